package route

import (
	"github.com/gofiber/fiber/v2"

	"priming_backend/internals/features/users/user/controller"
)

// UserRoutes: any authenticated user, mounted under /api.
func UserRoutes(r fiber.Router, ctrl *controller.UserController) {
	r.Get("/user", ctrl.GetUserInfo)
	r.Get("/perfil", ctrl.GetProfile)
	r.Put("/perfil", ctrl.UpdateProfile)
	r.Put("/cambiar-password", ctrl.ChangePassword)
}

// UserAdminRoutes: admin only, mounted under /api/users.
func UserAdminRoutes(r fiber.Router, ctrl *controller.UserController) {
	r.Get("/", ctrl.ListUsers)
	r.Get("/:id", ctrl.GetUser)
	r.Put("/:id", ctrl.UpdateUser)
	r.Delete("/:id", ctrl.DeleteUser)
}
