package route

import (
	"github.com/gofiber/fiber/v2"

	"priming_backend/internals/features/games/game/controller"
)

// GameRoutes is mounted under /api/juegos. The static /progreso path is
// registered before /:id so it is not captured as an id.
func GameRoutes(r fiber.Router, ctrl *controller.GameController) {
	r.Get("/", ctrl.ListGames)
	r.Get("/progreso", ctrl.MyProgress)
	r.Get("/:id/nivel/:nivelId", ctrl.GetLevel)
	r.Post("/:id/nivel/:nivelId/progreso", ctrl.SaveProgress)
}
