package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "edulevels_backend/internals/features/users/auth/controller"
	"edulevels_backend/internals/middlewares"
)

// Public auth surface. Login and register carry stricter rate limits.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register) // 📝 new account
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)          // 🔐 email+password
	auth.Post("/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)   // 🔐 google id token
	auth.Post("/logout", ctrl.Logout)                                        // 🚪 clear cookie
}
