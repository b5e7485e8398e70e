package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resultController "edulevels_backend/internals/features/lms/results/controller"
	helper "edulevels_backend/internals/helpers"
)

func TestResultUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := resultController.NewTestResultController(db)

	user.Get("/test-results", ctrl.List)                        // 📄 merged feed
	user.Post("/level-test-results", ctrl.CreateLevelResult)    // ➕ record level result
	user.Post("/subtopic-test-results", ctrl.CreateSubTopicResult)
	user.All("/test-results", helper.MethodNotAllowed("GET"))
}
