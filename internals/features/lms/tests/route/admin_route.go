package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	testController "edulevels_backend/internals/features/lms/tests/controller"
)

// Admin surface: create/delete tests, manage the question bank.
func TestAdminRoutes(admin fiber.Router, db *gorm.DB) {
	levelTestCtrl := testController.NewLevelTestController(db)
	subTopicTestCtrl := testController.NewSubTopicTestController(db)
	questionCtrl := testController.NewTestQuestionController(db)

	admin.Post("/level-tests", levelTestCtrl.Create)                 // ➕ add test
	admin.Post("/level-tests/generate", levelTestCtrl.GenerateRandom) // 🎲 random test
	admin.Delete("/level-tests/:id", levelTestCtrl.Delete)           // ❌ remove test

	admin.Post("/subtopic-tests", subTopicTestCtrl.Create)
	admin.Delete("/subtopic-tests/:id", subTopicTestCtrl.Delete)

	questions := admin.Group("/test-questions")
	questions.Post("/", questionCtrl.Create)            // ➕ add question + options
	questions.Get("/", questionCtrl.GetAll)             // 📄 list questions
	questions.Get("/:id", questionCtrl.GetByID)         // 🔍 question detail
	questions.Patch("/:id/deactivate", questionCtrl.Deactivate)
}
