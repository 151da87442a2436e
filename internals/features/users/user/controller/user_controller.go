package controller

import (
	"github.com/gofiber/fiber/v2"

	"priming_backend/internals/features/users/user/dto"
	"priming_backend/internals/features/users/user/service"
	helper "priming_backend/internals/helpers"
)

type UserController struct {
	Service *service.UserService
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{Service: svc}
}

// GET /api/user
func (uc *UserController) GetUserInfo(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	user, err := uc.Service.GetUserInfo(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, user)
}

// GET /api/perfil
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	profile, err := uc.Service.GetProfile(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, profile)
}

// PUT /api/perfil
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.UpdateProfileRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	if err := uc.Service.UpdateProfile(c.UserContext(), userID, req); err != nil {
		return err
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Perfil actualizado correctamente", nil)
}

// PUT /api/cambiar-password
func (uc *UserController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.ChangePasswordRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	if err := uc.Service.ChangePassword(c.UserContext(), userID, req); err != nil {
		return err
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Contraseña actualizada correctamente", nil)
}
