package details

import (
	"github.com/gofiber/fiber/v2"

	gameController "priming_backend/internals/features/games/game/controller"
	gameRoute "priming_backend/internals/features/games/game/route"
	gameService "priming_backend/internals/features/games/game/service"
	progressService "priming_backend/internals/features/games/progress/service"
	authMiddleware "priming_backend/internals/middlewares/auth"
)

// GameRoutes mounts /api/juegos for every role.
func GameRoutes(protected fiber.Router, d Deps) {
	ctrl := gameController.NewGameController(
		gameService.NewGameService(d.DB),
		progressService.NewProgressService(d.DB),
	)
	games := protected.Group("/juegos", authMiddleware.IsChildOrEvaluatorOrAdmin())
	gameRoute.GameRoutes(games, ctrl)
}
