package controller

import (
	"github.com/gofiber/fiber/v2"

	"priming_backend/internals/features/users/user/dto"
	helper "priming_backend/internals/helpers"
)

// GET /api/users
func (uc *UserController) ListUsers(c *fiber.Ctx) error {
	users, err := uc.Service.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, users)
}

// GET /api/users/:id
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return err
	}
	profile, err := uc.Service.GetProfile(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, profile)
}

// PUT /api/users/:id
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req dto.AdminUpdateUserRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	profile, err := uc.Service.AdminUpdateUser(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Usuario actualizado correctamente", fiber.Map{"user": profile})
}

// DELETE /api/users/:id
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := uc.Service.DeleteUser(c.UserContext(), actorID, id); err != nil {
		return err
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Usuario eliminado correctamente", nil)
}
