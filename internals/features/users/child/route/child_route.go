package route

import (
	"github.com/gofiber/fiber/v2"

	gameController "priming_backend/internals/features/games/game/controller"
	"priming_backend/internals/features/users/child/controller"
)

// ChildRoutes is mounted under /api/nino behind the child gate.
func ChildRoutes(r fiber.Router, ctrl *controller.ChildController) {
	r.Get("/perfil", ctrl.Profile)
	r.Get("/progreso", ctrl.Progress)
	r.Post("/juego/:juegoId/nivel/:nivelId/progreso",
		gameController.SaveProgressHandler(ctrl.Service.Progress, "juegoId", "nivelId"))
	r.Get("/juego/:juegoId/nivel-actual", ctrl.CurrentLevel)
	r.Get("/estadisticas", ctrl.Statistics)
}
