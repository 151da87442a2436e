package details

import (
	"github.com/gofiber/fiber/v2"

	progressService "priming_backend/internals/features/games/progress/service"
	childController "priming_backend/internals/features/users/child/controller"
	childRoute "priming_backend/internals/features/users/child/route"
	childService "priming_backend/internals/features/users/child/service"
	userController "priming_backend/internals/features/users/user/controller"
	userRoute "priming_backend/internals/features/users/user/route"
	userService "priming_backend/internals/features/users/user/service"
	authMiddleware "priming_backend/internals/middlewares/auth"
)

// UserRoutes mounts /api/user, /api/perfil, /api/cambiar-password and the
// admin-only /api/users group.
func UserRoutes(protected fiber.Router, d Deps) {
	ctrl := userController.NewUserController(userService.NewUserService(d.DB, d.Hasher))

	userRoute.UserRoutes(protected, ctrl)

	admin := protected.Group("/users", authMiddleware.IsAdmin())
	userRoute.UserAdminRoutes(admin, ctrl)
}

// ChildRoutes mounts /api/nino behind the child gate.
func ChildRoutes(protected fiber.Router, d Deps) {
	svc := childService.NewChildService(d.DB, progressService.NewProgressService(d.DB))

	nino := protected.Group("/nino", authMiddleware.IsChild())
	childRoute.ChildRoutes(nino, childController.NewChildController(svc))
}
