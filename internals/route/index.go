// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"priming_backend/internals/configs"
	"priming_backend/internals/middlewares"
	authMiddleware "priming_backend/internals/middlewares/auth"
	routeDetails "priming_backend/internals/route/details"
)

var startTime time.Time

// SetupRoutes mounts every group. Order matters: a group created with
// middleware applies it to every later route under the same prefix, so the
// public routes go first.
func SetupRoutes(app *fiber.App, cfg *configs.Config, deps routeDetails.Deps) {
	startTime = time.Now()
	log := zap.L()

	// ===================== BASE (public) =====================
	BaseRoutes(app, cfg, deps.DB)

	api := app.Group("/api", middlewares.GlobalRateLimiter())

	// ===================== AUTH (public) =====================
	log.Info("[ROUTES] mounting public auth routes")
	routeDetails.AuthPublicRoutes(api, deps)

	// ===================== AUTHENTICATED =====================
	protected := api.Group("", authMiddleware.AuthMiddleware(deps.Tokens))

	log.Info("[ROUTES] mounting user routes")
	routeDetails.AuthProtectedRoutes(protected, deps)
	routeDetails.UserRoutes(protected, deps)

	log.Info("[ROUTES] mounting evaluation routes")
	routeDetails.EvaluationRoutes(protected, deps)

	log.Info("[ROUTES] mounting game routes")
	routeDetails.GameRoutes(protected, deps)
	routeDetails.ChildRoutes(protected, deps)
}
