package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	testModel "edulevels_backend/internals/features/lms/tests/model"
	"edulevels_backend/internals/features/lms/results/dto"
	"edulevels_backend/internals/features/lms/results/model"
	"edulevels_backend/internals/features/lms/results/service"
	moduleModel "edulevels_backend/internals/features/lms/modules/model"
	helper "edulevels_backend/internals/helpers"
)

type TestResultController struct {
	DB *gorm.DB
}

func NewTestResultController(db *gorm.DB) *TestResultController {
	return &TestResultController{DB: db}
}

var validate = validator.New()

// =============================
// 📄 Merged result feed
// GET /test-results?userId=&type=
// =============================
func (ctrl *TestResultController) List(c *fiber.Ctx) error {
	requesterID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	requesterRole := helper.GetUserRole(c)

	targetID := requesterID
	if raw := c.Query("userId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "userId must be a valid uuid")
		}
		targetID = parsed
	}

	if !service.CanViewResults(requesterID, requesterRole, targetID) {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only view your own test results")
	}

	results, err := service.ListResults(ctrl.DB, targetID, c.Query("type"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch test results")
	}
	return helper.JsonOK(c, "ok", results)
}

// =============================
// ➕ Submit level test result
// =============================
func (ctrl *TestResultController) CreateLevelResult(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateLevelTestResultRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	testID, _ := uuid.Parse(body.TestID)
	var test testModel.LevelTestModel
	if err := ctrl.DB.First(&test, "level_test_id = ?", testID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Level test not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch level test")
	}

	var level moduleModel.LevelModel
	if err := ctrl.DB.First(&level, "level_id = ?", test.LevelTestLevelID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve level")
	}

	result := model.LevelTestResultModel{
		LevelTestResultUserID:         userID,
		LevelTestResultTestID:         test.LevelTestID,
		LevelTestResultLevelID:        test.LevelTestLevelID,
		LevelTestResultModuleID:       level.LevelModuleID,
		LevelTestResultScore:          body.Score,
		LevelTestResultTotalQuestions: body.TotalQuestions,
		LevelTestResultCorrectAnswers: body.CorrectAnswers,
		LevelTestResultPassed:         body.Passed,
		LevelTestResultCompletedAt:    time.Now(),
	}
	if err := ctrl.DB.Create(&result).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store result")
	}
	return helper.JsonCreated(c, "Result recorded", dto.ToCombinedFromLevel(result))
}

// =============================
// ➕ Submit subtopic test result
// =============================
func (ctrl *TestResultController) CreateSubTopicResult(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateSubTopicTestResultRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	testID, _ := uuid.Parse(body.TestID)
	var test testModel.SubTopicTestModel
	if err := ctrl.DB.First(&test, "subtopic_test_id = ?", testID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "SubTopic test not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subtopic test")
	}

	var subTopic moduleModel.SubTopicModel
	if err := ctrl.DB.Preload("Level").First(&subTopic, "subtopic_id = ?", test.SubTopicTestSubTopicID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve subtopic")
	}

	result := model.SubTopicTestResultModel{
		SubTopicTestResultUserID:         userID,
		SubTopicTestResultTestID:         test.SubTopicTestID,
		SubTopicTestResultSubTopicID:     test.SubTopicTestSubTopicID,
		SubTopicTestResultLevelID:        subTopic.SubTopicLevelID,
		SubTopicTestResultScore:          body.Score,
		SubTopicTestResultTotalQuestions: body.TotalQuestions,
		SubTopicTestResultCorrectAnswers: body.CorrectAnswers,
		SubTopicTestResultPassed:         body.Passed,
		SubTopicTestResultCompletedAt:    time.Now(),
	}
	if subTopic.Level != nil {
		result.SubTopicTestResultModuleID = subTopic.Level.LevelModuleID
	}
	if err := ctrl.DB.Create(&result).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store result")
	}
	return helper.JsonCreated(c, "Result recorded", dto.ToCombinedFromSubTopic(result))
}
