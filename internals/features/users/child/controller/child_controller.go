package controller

import (
	"github.com/gofiber/fiber/v2"

	"priming_backend/internals/features/users/child/service"
	helper "priming_backend/internals/helpers"
)

type ChildController struct {
	Service *service.ChildService
}

func NewChildController(svc *service.ChildService) *ChildController {
	return &ChildController{Service: svc}
}

// GET /api/nino/perfil
func (cc *ChildController) Profile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	profile, err := cc.Service.Profile(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, profile)
}

// GET /api/nino/progreso
func (cc *ChildController) Progress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	out, err := cc.Service.Overview(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}

// GET /api/nino/juego/:juegoId/nivel-actual
func (cc *ChildController) CurrentLevel(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	gameID, err := helper.ParamID(c, "juegoId")
	if err != nil {
		return err
	}
	out, err := cc.Service.CurrentLevel(c.UserContext(), userID, gameID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}

// GET /api/nino/estadisticas
func (cc *ChildController) Statistics(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	out, err := cc.Service.Statistics(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}
