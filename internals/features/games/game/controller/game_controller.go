package controller

import (
	"github.com/gofiber/fiber/v2"

	"priming_backend/internals/features/games/game/service"
	progressDto "priming_backend/internals/features/games/progress/dto"
	progressService "priming_backend/internals/features/games/progress/service"
	helper "priming_backend/internals/helpers"
)

type GameController struct {
	Games    *service.GameService
	Progress *progressService.ProgressService
}

func NewGameController(games *service.GameService, progress *progressService.ProgressService) *GameController {
	return &GameController{Games: games, Progress: progress}
}

// GET /api/juegos
func (gc *GameController) ListGames(c *fiber.Ctx) error {
	games, err := gc.Games.ListGames(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, games)
}

// GET /api/juegos/:id/nivel/:nivelId
func (gc *GameController) GetLevel(c *fiber.Ctx) error {
	gameID, err := helper.ParamID(c, "id")
	if err != nil {
		return err
	}
	levelID, err := helper.ParamID(c, "nivelId")
	if err != nil {
		return err
	}
	level, err := gc.Games.GetLevel(c.UserContext(), gameID, levelID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, level)
}

// POST /api/juegos/:id/nivel/:nivelId/progreso
func (gc *GameController) SaveProgress(c *fiber.Ctx) error {
	return SaveProgressHandler(gc.Progress, "id", "nivelId")(c)
}

// GET /api/juegos/progreso
func (gc *GameController) MyProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	rows, err := gc.Progress.ListForUser(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, rows)
}

// SaveProgressHandler is shared by /api/juegos and /api/nino; only the
// path parameter names differ.
func SaveProgressHandler(svc *progressService.ProgressService, gameParam, levelParam string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		gameID, err := helper.ParamID(c, gameParam)
		if err != nil {
			return err
		}
		levelID, err := helper.ParamID(c, levelParam)
		if err != nil {
			return err
		}
		var req progressDto.SaveProgressRequest
		if err := helper.ParseBody(c, &req); err != nil {
			return err
		}
		res, err := svc.SaveProgress(c.UserContext(), userID, gameID, levelID, req)
		if err != nil {
			return err
		}
		return helper.JsonOK(c, res)
	}
}
