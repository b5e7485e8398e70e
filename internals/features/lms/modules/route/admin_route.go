package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	moduleController "edulevels_backend/internals/features/lms/modules/controller"
)

// Admin surface: full CRUD over the content tree.
func ModuleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	moduleCtrl := moduleController.NewModuleController(db)
	levelCtrl := moduleController.NewLevelController(db)
	subtopicCtrl := moduleController.NewSubTopicController(db)
	contentCtrl := moduleController.NewSubTopicContentController(db)

	admin.Post("/modules", moduleCtrl.Create)       // ➕ add module
	admin.Patch("/modules/:id", moduleCtrl.Update)  // ✏️ partial update
	admin.Delete("/modules/:id", moduleCtrl.Delete) // ❌ cascades down the tree

	admin.Post("/levels", levelCtrl.Create)
	admin.Delete("/levels/:id", levelCtrl.Delete)

	admin.Post("/subtopics", subtopicCtrl.Create)
	admin.Delete("/subtopics/:id", subtopicCtrl.Delete)

	admin.Get("/subtopic-contents", contentCtrl.GetAllBySubTopicID) // 📄 incl. drafts
	admin.Post("/subtopic-contents", contentCtrl.Create)
	admin.Patch("/subtopic-contents/:id/publish", contentCtrl.SetPublished)
	admin.Delete("/subtopic-contents/:id", contentCtrl.Delete)
}
