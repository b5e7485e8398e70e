package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edulevels_backend/internals/features/lms/modules/dto"
	"edulevels_backend/internals/features/lms/modules/model"
	helper "edulevels_backend/internals/helpers"
)

type LevelController struct {
	DB *gorm.DB
}

func NewLevelController(db *gorm.DB) *LevelController {
	return &LevelController{DB: db}
}

// =============================
// 📄 Levels of a module, ordered
// =============================
func (ctrl *LevelController) GetByModuleID(c *fiber.Ctx) error {
	moduleID := c.Query("moduleId")
	if moduleID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "moduleId is required")
	}

	var levels []model.LevelModel
	if err := ctrl.DB.
		Where("level_module_id = ?", moduleID).
		Order("level_order ASC").
		Find(&levels).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch levels")
	}
	return helper.JsonOK(c, "ok", levels)
}

// =============================
// 🔍 Level detail with subtopics
// =============================
func (ctrl *LevelController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var level model.LevelModel
	if err := ctrl.DB.
		Preload("SubTopics", func(db *gorm.DB) *gorm.DB { return db.Order("subtopic_order ASC") }).
		First(&level, "level_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Level not found")
	}
	return helper.JsonOK(c, "ok", level)
}

// =============================
// ➕ Create level
// =============================
func (ctrl *LevelController) Create(c *fiber.Ctx) error {
	var body dto.CreateLevelRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	moduleID, err := uuid.Parse(body.LevelModuleID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid level_module_id")
	}

	level := model.LevelModel{
		LevelModuleID: moduleID,
		LevelTitle:    body.LevelTitle,
		LevelOrder:    body.LevelOrder,
	}
	if err := ctrl.DB.Create(&level).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return helper.JsonError(c, fiber.StatusNotFound, "Module not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create level")
	}
	return helper.JsonCreated(c, "Level created", level)
}

// =============================
// ❌ Delete level (cascades)
// =============================
func (ctrl *LevelController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.LevelModel{}, "level_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete level")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Level not found")
	}
	return helper.JsonDeleted(c, "Level deleted", fiber.Map{"level_id": id})
}
