package route

import (
	"github.com/gofiber/fiber/v2"

	"priming_backend/internals/features/evaluations/survey/controller"
)

// SurveyAdminRoutes is mounted under /api/encuestas/admin. It must be
// registered before SurveyRoutes so /admin is not captured as /:id.
func SurveyAdminRoutes(r fiber.Router, ctrl *controller.SurveyController) {
	r.Get("/usuario/:usuario_id", ctrl.AdminChildSurveys)
	r.Put("/resultados/:id", ctrl.AdminUpdateResult)
}

// SurveyRoutes is mounted under /api/encuestas behind the evaluator gate.
func SurveyRoutes(r fiber.Router, ctrl *controller.SurveyController) {
	r.Post("/", ctrl.Create)
	r.Get("/nino/:nino_id", ctrl.ListForChild)
	r.Put("/:id", ctrl.Update)
	r.Post("/:id/resultados", ctrl.SubmitResults)
	r.Get("/:id/resultados", ctrl.GetResults)
}
