package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certController "edulevels_backend/internals/features/certificates/controller"
)

// Admin surface: issue and inspect certificates.
func CertificateAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := certController.NewCertificateController(db)

	admin.Post("/users/:id/issue-certificate", ctrl.Issue)  // 🎓 one-shot issuance
	admin.Get("/users/:id/certificates", ctrl.ListByUser)   // 📄 audit rows
}
