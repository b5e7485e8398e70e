package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "edulevels_backend/internals/features/lms/enrollments/controller"
	helper "edulevels_backend/internals/helpers"
)

func EnrollmentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := enrollmentController.NewEnrollmentController(db)

	user.Get("/enrollments", ctrl.ListMine)            // 📄 my enrollments
	user.Post("/modules/:id/enroll", ctrl.Enroll)      // ➕ enroll
	user.Patch("/modules/:id/enroll", ctrl.UpdateProgress) // ✏️ progress / completion
	user.Get("/modules/:id/enroll", ctrl.GetMine)      // 🔍 my enrollment
	user.All("/modules/:id/enroll", helper.MethodNotAllowed("GET", "POST", "PATCH"))
}
