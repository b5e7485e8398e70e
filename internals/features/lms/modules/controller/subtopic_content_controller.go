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

type SubTopicContentController struct {
	DB *gorm.DB
}

func NewSubTopicContentController(db *gorm.DB) *SubTopicContentController {
	return &SubTopicContentController{DB: db}
}

// =============================
// 📄 Published content of a subtopic
// =============================
// Learners only ever see published blocks, ordered by their index.
func (ctrl *SubTopicContentController) GetBySubTopicID(c *fiber.Ctx) error {
	subtopicID := c.Query("subtopicId")
	if subtopicID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "subtopicId is required")
	}

	var contents []model.SubTopicContentModel
	if err := ctrl.DB.
		Where("subtopic_content_subtopic_id = ? AND subtopic_content_is_published = ?", subtopicID, true).
		Order("subtopic_content_order_index ASC").
		Find(&contents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch contents")
	}
	return helper.JsonOK(c, "ok", contents)
}

// =============================
// 📄 All content incl. drafts (admin)
// =============================
func (ctrl *SubTopicContentController) GetAllBySubTopicID(c *fiber.Ctx) error {
	subtopicID := c.Query("subtopicId")
	if subtopicID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "subtopicId is required")
	}

	var contents []model.SubTopicContentModel
	if err := ctrl.DB.
		Where("subtopic_content_subtopic_id = ?", subtopicID).
		Order("subtopic_content_order_index ASC").
		Find(&contents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch contents")
	}
	return helper.JsonOK(c, "ok", contents)
}

// =============================
// ➕ Create content block
// =============================
func (ctrl *SubTopicContentController) Create(c *fiber.Ctx) error {
	var body dto.CreateSubTopicContentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	subtopicID, err := uuid.Parse(body.SubTopicContentSubTopicID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subtopic_content_subtopic_id")
	}

	content := model.SubTopicContentModel{
		SubTopicContentSubTopicID:  subtopicID,
		SubTopicContentTitle:       body.SubTopicContentTitle,
		SubTopicContentBody:        body.SubTopicContentBody,
		SubTopicContentOrderIndex:  body.SubTopicContentOrderIndex,
		SubTopicContentIsPublished: body.SubTopicContentIsPublished,
	}
	if err := ctrl.DB.Create(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subtopic not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create content")
	}
	return helper.JsonCreated(c, "Content created", content)
}

// =============================
// ✏️ Toggle publish state
// =============================
func (ctrl *SubTopicContentController) SetPublished(c *fiber.Ctx) error {
	id := c.Params("id")

	var body struct {
		IsPublished *bool `json:"is_published" validate:"required"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if body.IsPublished == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "is_published is required")
	}

	res := ctrl.DB.Model(&model.SubTopicContentModel{}).
		Where("subtopic_content_id = ?", id).
		Update("subtopic_content_is_published", *body.IsPublished)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update content")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
	}
	return helper.JsonUpdated(c, "Content updated", fiber.Map{"subtopic_content_id": id, "is_published": *body.IsPublished})
}

// =============================
// ❌ Delete content block
// =============================
func (ctrl *SubTopicContentController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.SubTopicContentModel{}, "subtopic_content_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete content")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
	}
	return helper.JsonDeleted(c, "Content deleted", fiber.Map{"subtopic_content_id": id})
}
