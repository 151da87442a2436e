package route

import (
	"github.com/gofiber/fiber/v2"

	"priming_backend/internals/features/evaluations/evaluator/controller"
)

// EvaluatorRoutes is mounted under /api/evaluador behind the evaluator gate.
func EvaluatorRoutes(r fiber.Router, ctrl *controller.EvaluatorController) {
	r.Post("/asignar-nino", ctrl.AssignChild)
	r.Get("/ninos", ctrl.ListChildren)
	r.Get("/resultados/:ninoId", ctrl.ChildResults)
	r.Put("/ninos/:ninoId", ctrl.EditChild)
	r.Put("/ninos/:ninoId/password", ctrl.ChangeChildPassword)
	r.Get("/estadisticas", ctrl.Statistics)
}
