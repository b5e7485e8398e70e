package controller

import (
	"errors"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edulevels_backend/internals/features/lms/tests/dto"
	"edulevels_backend/internals/features/lms/tests/model"
	"edulevels_backend/internals/features/lms/tests/service"
	helper "edulevels_backend/internals/helpers"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

type SubTopicTestController struct {
	DB *gorm.DB
}

func NewSubTopicTestController(db *gorm.DB) *SubTopicTestController {
	return &SubTopicTestController{DB: db}
}

// =============================
// 🔍 Get assembled test by subtopic
// GET /subtopic-tests?subtopicId=
// =============================
func (ctrl *SubTopicTestController) GetBySubTopicID(c *fiber.Ctx) error {
	subTopicID := c.Query("subtopicId")
	if subTopicID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "subtopicId query parameter is required")
	}
	if _, err := uuid.Parse(subTopicID); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "subtopicId must be a valid uuid")
	}

	var test model.SubTopicTestModel
	if err := ctrl.DB.First(&test, "subtopic_test_subtopic_id = ?", subTopicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "ok", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subtopic test")
	}

	assembled, err := service.AssembleSubTopicTest(ctrl.DB, test)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assemble subtopic test")
	}
	return helper.JsonOK(c, "ok", assembled)
}

// =============================
// ➕ Create subtopic test
// =============================
func (ctrl *SubTopicTestController) Create(c *fiber.Ctx) error {
	var body dto.CreateSubTopicTestRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	subTopicID, _ := uuid.Parse(body.SubTopicTestSubTopicID)

	test := model.SubTopicTestModel{
		SubTopicTestTitle:          body.SubTopicTestTitle,
		SubTopicTestDescription:    body.SubTopicTestDescription,
		SubTopicTestSubTopicID:     subTopicID,
		SubTopicTestQuestions:      dto.QuestionsJSON(body.SubTopicTestQuestions),
		SubTopicTestTotalQuestions: len(body.SubTopicTestQuestions),
		SubTopicTestPassingScore:   70,
		SubTopicTestTimeLimit:      1800,
		SubTopicTestIsActive:       true,
	}
	if body.SubTopicTestPassingScore != nil {
		test.SubTopicTestPassingScore = *body.SubTopicTestPassingScore
	}
	if body.SubTopicTestTimeLimit != nil {
		test.SubTopicTestTimeLimit = *body.SubTopicTestTimeLimit
	}

	if err := ctrl.DB.Create(&test).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "A test already exists for this subtopic")
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return helper.JsonError(c, fiber.StatusNotFound, "SubTopic not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subtopic test")
	}

	return helper.JsonCreated(c, "SubTopic test created", test)
}

// =============================
// ❌ Delete subtopic test
// =============================
func (ctrl *SubTopicTestController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.SubTopicTestModel{}, "subtopic_test_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subtopic test")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "SubTopic test not found")
	}
	return helper.JsonDeleted(c, "SubTopic test deleted", fiber.Map{"subtopic_test_id": id})
}
