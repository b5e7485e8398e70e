package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "edulevels_backend/internals/features/payment/paystack/controller"
	helper "edulevels_backend/internals/helpers"
)

// Public: webhook only (signature-authenticated, skipped by the JWT middleware).
func PaymentPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	r.Post("/payments/webhook", ctrl.Webhook) // 🪝 gateway callbacks
	r.All("/payments/webhook", helper.MethodNotAllowed("POST"))
}

// Authenticated user surface.
func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	r.Post("/payments/initialize", ctrl.Initialize)       // 💳 start a charge
	r.Get("/payments/verify/:reference", ctrl.Verify)     // ✅ confirm a charge
}
