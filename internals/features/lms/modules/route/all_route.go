package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	moduleController "edulevels_backend/internals/features/lms/modules/controller"
)

// Public read surface for the content tree.
func AllModuleRoutes(r fiber.Router, db *gorm.DB) {
	moduleCtrl := moduleController.NewModuleController(db)
	levelCtrl := moduleController.NewLevelController(db)
	subtopicCtrl := moduleController.NewSubTopicController(db)
	contentCtrl := moduleController.NewSubTopicContentController(db)

	r.Get("/modules", moduleCtrl.GetAll)       // 📄 active modules
	r.Get("/modules/:id", moduleCtrl.GetByID)  // 🔍 module with tree

	r.Get("/levels", levelCtrl.GetByModuleID)  // 📄 levels of a module
	r.Get("/levels/:id", levelCtrl.GetByID)    // 🔍 level with subtopics

	r.Get("/subtopics", subtopicCtrl.GetByLevelID)
	r.Get("/subtopics/:id", subtopicCtrl.GetByID)

	r.Get("/subtopic-contents", contentCtrl.GetBySubTopicID) // 📄 published blocks only
}
