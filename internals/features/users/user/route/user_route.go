package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "edulevels_backend/internals/features/users/user/controller"
)

// Authenticated user surface.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	r.Get("/users/me", ctrl.Me) // 👤 current account + profile
}

// Admin surface over accounts.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	admin.Get("/users", ctrl.GetAll)                      // 📄 list accounts
	admin.Get("/users/:id", ctrl.GetByID)                 // 🔍 account detail
	admin.Patch("/users/:id/profile", ctrl.UpdateProfileGate) // ✏️ certificate gate
}
