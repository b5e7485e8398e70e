package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edulevels_backend/internals/features/lms/tests/dto"
	"edulevels_backend/internals/features/lms/tests/model"
	helper "edulevels_backend/internals/helpers"
)

type TestQuestionController struct {
	DB *gorm.DB
}

func NewTestQuestionController(db *gorm.DB) *TestQuestionController {
	return &TestQuestionController{DB: db}
}

// =============================
// ➕ Create question + options
// =============================
func (ctrl *TestQuestionController) Create(c *fiber.Ctx) error {
	var body dto.CreateTestQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	question := model.TestQuestionModel{
		TestQuestionText:     body.TestQuestionText,
		TestQuestionIsActive: true,
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		for _, opt := range body.Options {
			option := model.TestOptionModel{
				TestOptionQuestionID: question.TestQuestionID,
				TestOptionText:       opt.TestOptionText,
				TestOptionLetter:     opt.TestOptionLetter,
				TestOptionIsCorrect:  opt.TestOptionIsCorrect,
			}
			if err := tx.Create(&option).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create question")
	}

	var created model.TestQuestionModel
	if err := ctrl.DB.Preload("Options").First(&created, "test_question_id = ?", question.TestQuestionID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload question")
	}
	return helper.JsonCreated(c, "Question created", dto.ToTestQuestionDTO(created))
}

// =============================
// 📄 List questions
// =============================
func (ctrl *TestQuestionController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.TestQuestionModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count questions")
	}

	var questions []model.TestQuestionModel
	if err := ctrl.DB.
		Preload("Options").
		Order("test_question_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	result := make([]dto.TestQuestionDTO, 0, len(questions))
	for _, q := range questions {
		result = append(result, dto.ToTestQuestionDTO(q))
	}

	return helper.JsonList(c, "ok", result, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// 🔍 Get question by id
// =============================
func (ctrl *TestQuestionController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var question model.TestQuestionModel
	if err := ctrl.DB.Preload("Options").First(&question, "test_question_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}
	return helper.JsonOK(c, "ok", dto.ToTestQuestionDTO(question))
}

// =============================
// ❌ Deactivate question
// =============================
func (ctrl *TestQuestionController) Deactivate(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Model(&model.TestQuestionModel{}).
		Where("test_question_id = ?", id).
		Update("test_question_is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to deactivate question")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}
	return helper.JsonUpdated(c, "Question deactivated", fiber.Map{"test_question_id": id})
}
