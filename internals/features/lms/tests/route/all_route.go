package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	testController "edulevels_backend/internals/features/lms/tests/controller"
	helper "edulevels_backend/internals/helpers"
)

// Public read surface for assembled tests.
func AllTestRoutes(r fiber.Router, db *gorm.DB) {
	levelTestCtrl := testController.NewLevelTestController(db)
	subTopicTestCtrl := testController.NewSubTopicTestController(db)

	r.Get("/level-tests", levelTestCtrl.GetByLevelID)       // 🔍 assembled test for a level
	r.Get("/level-tests/:id", levelTestCtrl.GetByID)        // 🔍 assembled test by id
	r.Get("/subtopic-tests", subTopicTestCtrl.GetBySubTopicID)

	// fixed-shape resources: unsupported verbs answer 405 + Allow
	r.All("/level-tests", helper.MethodNotAllowed("GET", "POST"))
	r.All("/subtopic-tests", helper.MethodNotAllowed("GET", "POST"))
}
