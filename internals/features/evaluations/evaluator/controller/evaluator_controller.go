package controller

import (
	"github.com/gofiber/fiber/v2"

	"priming_backend/internals/features/evaluations/evaluator/dto"
	"priming_backend/internals/features/evaluations/evaluator/service"
	userDto "priming_backend/internals/features/users/user/dto"
	helper "priming_backend/internals/helpers"
)

type EvaluatorController struct {
	Service *service.EvaluatorService
}

func NewEvaluatorController(svc *service.EvaluatorService) *EvaluatorController {
	return &EvaluatorController{Service: svc}
}

// POST /api/evaluador/asignar-nino
func (ec *EvaluatorController) AssignChild(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.AssignChildRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	surveyID, err := ec.Service.AssignChild(c.UserContext(), actorID, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Niño registrado y encuesta iniciada exitosamente", fiber.Map{"encuestaId": surveyID})
}

// GET /api/evaluador/ninos
func (ec *EvaluatorController) ListChildren(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	rows, err := ec.Service.ListChildren(c.UserContext(), actorID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, rows)
}

// GET /api/evaluador/resultados/:ninoId
func (ec *EvaluatorController) ChildResults(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	childID, err := helper.ParamID(c, "ninoId")
	if err != nil {
		return err
	}
	out, err := ec.Service.ChildResults(c.UserContext(), actorID, childID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}

// PUT /api/evaluador/ninos/:ninoId
func (ec *EvaluatorController) EditChild(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	childID, err := helper.ParamID(c, "ninoId")
	if err != nil {
		return err
	}
	var req dto.EditChildRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	if err := ec.Service.EditChild(c.UserContext(), actorID, childID, req); err != nil {
		return err
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Datos del niño actualizados correctamente", nil)
}

// PUT /api/evaluador/ninos/:ninoId/password
func (ec *EvaluatorController) ChangeChildPassword(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	childID, err := helper.ParamID(c, "ninoId")
	if err != nil {
		return err
	}
	var req userDto.ChangePasswordRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	if err := ec.Service.ChangeChildPassword(c.UserContext(), actorID, childID, req); err != nil {
		return err
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Contraseña del niño actualizada correctamente", nil)
}

// GET /api/evaluador/estadisticas
func (ec *EvaluatorController) Statistics(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	out, err := ec.Service.Statistics(c.UserContext(), actorID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}
