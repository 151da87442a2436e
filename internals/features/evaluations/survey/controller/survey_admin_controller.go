package controller

import (
	"github.com/gofiber/fiber/v2"

	"priming_backend/internals/features/evaluations/survey/dto"
	helper "priming_backend/internals/helpers"
)

// GET /api/encuestas/admin/usuario/:usuario_id
func (sc *SurveyController) AdminChildSurveys(c *fiber.Ctx) error {
	userID, err := helper.ParamID(c, "usuario_id")
	if err != nil {
		return err
	}
	out, err := sc.Service.AdminChildSurveys(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}

// PUT /api/encuestas/admin/resultados/:id
func (sc *SurveyController) AdminUpdateResult(c *fiber.Ctx) error {
	resultID, err := helper.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ResultRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	updated, err := sc.Service.AdminUpdateResult(c.UserContext(), resultID, req)
	if err != nil {
		return err
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Resultado actualizado correctamente", fiber.Map{"resultado": updated})
}
