package details

import (
	"github.com/gofiber/fiber/v2"

	evaluatorController "priming_backend/internals/features/evaluations/evaluator/controller"
	evaluatorRoute "priming_backend/internals/features/evaluations/evaluator/route"
	evaluatorService "priming_backend/internals/features/evaluations/evaluator/service"
	surveyController "priming_backend/internals/features/evaluations/survey/controller"
	surveyRoute "priming_backend/internals/features/evaluations/survey/route"
	surveyService "priming_backend/internals/features/evaluations/survey/service"
	authMiddleware "priming_backend/internals/middlewares/auth"
)

// EvaluationRoutes mounts /api/evaluador and /api/encuestas.
func EvaluationRoutes(protected fiber.Router, d Deps) {
	evaluator := protected.Group("/evaluador", authMiddleware.IsEvaluatorOrAdmin())
	evaluatorRoute.EvaluatorRoutes(evaluator,
		evaluatorController.NewEvaluatorController(evaluatorService.NewEvaluatorService(d.DB, d.Hasher)))

	surveyCtrl := surveyController.NewSurveyController(surveyService.NewSurveyService(d.DB))
	surveys := protected.Group("/encuestas", authMiddleware.IsEvaluatorOrAdmin())

	// admin oversight first, /:id would capture "admin"
	surveyRoute.SurveyAdminRoutes(surveys.Group("/admin", authMiddleware.IsAdmin()), surveyCtrl)
	surveyRoute.SurveyRoutes(surveys, surveyCtrl)
}
