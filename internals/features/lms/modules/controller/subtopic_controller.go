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

type SubTopicController struct {
	DB *gorm.DB
}

func NewSubTopicController(db *gorm.DB) *SubTopicController {
	return &SubTopicController{DB: db}
}

// =============================
// 📄 Subtopics of a level, ordered
// =============================
func (ctrl *SubTopicController) GetByLevelID(c *fiber.Ctx) error {
	levelID := c.Query("levelId")
	if levelID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "levelId is required")
	}

	var subtopics []model.SubTopicModel
	if err := ctrl.DB.
		Where("subtopic_level_id = ?", levelID).
		Order("subtopic_order ASC").
		Find(&subtopics).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subtopics")
	}
	return helper.JsonOK(c, "ok", subtopics)
}

// =============================
// 🔍 Subtopic detail
// =============================
func (ctrl *SubTopicController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var subtopic model.SubTopicModel
	if err := ctrl.DB.First(&subtopic, "subtopic_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subtopic not found")
	}
	return helper.JsonOK(c, "ok", subtopic)
}

// =============================
// ➕ Create subtopic
// =============================
func (ctrl *SubTopicController) Create(c *fiber.Ctx) error {
	var body dto.CreateSubTopicRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	levelID, err := uuid.Parse(body.SubTopicLevelID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subtopic_level_id")
	}

	subtopic := model.SubTopicModel{
		SubTopicLevelID: levelID,
		SubTopicTitle:   body.SubTopicTitle,
		SubTopicOrder:   body.SubTopicOrder,
	}
	if err := ctrl.DB.Create(&subtopic).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return helper.JsonError(c, fiber.StatusNotFound, "Level not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subtopic")
	}
	return helper.JsonCreated(c, "Subtopic created", subtopic)
}

// =============================
// ❌ Delete subtopic (cascades)
// =============================
func (ctrl *SubTopicController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.SubTopicModel{}, "subtopic_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subtopic")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subtopic not found")
	}
	return helper.JsonDeleted(c, "Subtopic deleted", fiber.Map{"subtopic_id": id})
}
