package controller

import (
	"github.com/gofiber/fiber/v2"

	"priming_backend/internals/features/evaluations/survey/dto"
	"priming_backend/internals/features/evaluations/survey/service"
	helper "priming_backend/internals/helpers"
)

type SurveyController struct {
	Service *service.SurveyService
}

func NewSurveyController(svc *service.SurveyService) *SurveyController {
	return &SurveyController{Service: svc}
}

// POST /api/encuestas
func (sc *SurveyController) Create(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.CreateSurveyRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	id, err := sc.Service.Create(c.UserContext(), actorID, req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Encuesta creada exitosamente", fiber.Map{"encuestaId": id})
}

// GET /api/encuestas/nino/:nino_id
func (sc *SurveyController) ListForChild(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	childID, err := helper.ParamID(c, "nino_id")
	if err != nil {
		return err
	}
	rows, err := sc.Service.ListForChild(c.UserContext(), actorID, childID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, rows)
}

// PUT /api/encuestas/:id
func (sc *SurveyController) Update(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	surveyID, err := helper.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateSurveyRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	if err := sc.Service.Update(c.UserContext(), actorID, surveyID, req); err != nil {
		return err
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Encuesta actualizada correctamente", nil)
}

// POST /api/encuestas/:id/resultados
func (sc *SurveyController) SubmitResults(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	surveyID, err := helper.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ResultRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	id, err := sc.Service.SubmitResults(c.UserContext(), actorID, surveyID, req)
	if err != nil {
		return err
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Resultados registrados correctamente", fiber.Map{"resultadoId": id})
}

// GET /api/encuestas/:id/resultados
func (sc *SurveyController) GetResults(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	surveyID, err := helper.ParamID(c, "id")
	if err != nil {
		return err
	}
	out, err := sc.Service.GetResults(c.UserContext(), actorID, surveyID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}
