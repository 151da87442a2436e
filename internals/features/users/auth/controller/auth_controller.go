package controller

import (
	"github.com/gofiber/fiber/v2"

	"priming_backend/internals/features/users/auth/dto"
	"priming_backend/internals/features/users/auth/service"
	helper "priming_backend/internals/helpers"
)

type AuthController struct {
	Service *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

// POST /api/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	userID, err := ac.Service.Register(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Usuario registrado exitosamente", fiber.Map{"userId": userID})
}

// POST /api/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	res, err := ac.Service.Login(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res)
}

// GET /api/verify-token
func (ac *AuthController) VerifyToken(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	user, err := ac.Service.CurrentUser(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, dto.VerifyTokenResponse{Valid: true, User: *user})
}
