package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edulevels_backend/internals/features/lms/tests/dto"
	"edulevels_backend/internals/features/lms/tests/model"
	"edulevels_backend/internals/features/lms/tests/service"
	helper "edulevels_backend/internals/helpers"
)

type LevelTestController struct {
	DB *gorm.DB
}

func NewLevelTestController(db *gorm.DB) *LevelTestController {
	return &LevelTestController{DB: db}
}

var validate = validator.New()

// =============================
// 🔍 Get assembled test by level
// GET /level-tests?levelId=
// =============================
func (ctrl *LevelTestController) GetByLevelID(c *fiber.Ctx) error {
	levelID := c.Query("levelId")
	if levelID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "levelId query parameter is required")
	}
	if _, err := uuid.Parse(levelID); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "levelId must be a valid uuid")
	}

	var test model.LevelTestModel
	if err := ctrl.DB.First(&test, "level_test_level_id = ?", levelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// the level simply has no test yet; respond with null, not 404
			return helper.JsonOK(c, "ok", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch level test")
	}

	assembled, err := service.AssembleLevelTest(ctrl.DB, test)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assemble level test")
	}
	return helper.JsonOK(c, "ok", assembled)
}

// =============================
// 🔍 Get assembled test by id
// =============================
func (ctrl *LevelTestController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var test model.LevelTestModel
	if err := ctrl.DB.First(&test, "level_test_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Level test not found")
	}

	assembled, err := service.AssembleLevelTest(ctrl.DB, test)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assemble level test")
	}
	return helper.JsonOK(c, "ok", assembled)
}

// =============================
// ➕ Create level test
// =============================
func (ctrl *LevelTestController) Create(c *fiber.Ctx) error {
	var body dto.CreateLevelTestRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	levelID, _ := uuid.Parse(body.LevelTestLevelID)

	test := model.LevelTestModel{
		LevelTestTitle:          body.LevelTestTitle,
		LevelTestDescription:    body.LevelTestDescription,
		LevelTestLevelID:        levelID,
		LevelTestQuestions:      dto.QuestionsJSON(body.LevelTestQuestions),
		LevelTestTotalQuestions: len(body.LevelTestQuestions),
	}
	if body.LevelTestPassingScore != nil {
		test.LevelTestPassingScore = *body.LevelTestPassingScore
	} else {
		test.LevelTestPassingScore = 70
	}
	if body.LevelTestTimeLimit != nil {
		test.LevelTestTimeLimit = *body.LevelTestTimeLimit
	} else {
		test.LevelTestTimeLimit = 1800
	}
	test.LevelTestIsActive = true

	if err := ctrl.DB.Create(&test).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "A test already exists for this level")
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return helper.JsonError(c, fiber.StatusNotFound, "Level not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create level test")
	}

	return helper.JsonCreated(c, "Level test created", test)
}

// =============================
// 🎲 Generate random level test
// =============================
func (ctrl *LevelTestController) GenerateRandom(c *fiber.Ctx) error {
	levelID := c.Query("levelId")
	if levelID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "levelId query parameter is required")
	}
	parsedLevelID, err := uuid.Parse(levelID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "levelId must be a valid uuid")
	}

	questions, err := service.GenerateRandomQuestions(ctrl.DB, service.DefaultRandomQuestionCount, newRand())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load question bank")
	}
	raw, err := service.InlineQuestionsJSON(questions)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to encode questions")
	}

	test := model.LevelTestModel{
		LevelTestTitle:          "Level Assessment",
		LevelTestDescription:    "Randomly generated level assessment",
		LevelTestLevelID:        parsedLevelID,
		LevelTestQuestions:      raw,
		LevelTestTotalQuestions: len(questions),
		LevelTestPassingScore:   70,
		LevelTestTimeLimit:      1800,
		LevelTestIsActive:       true,
	}
	if err := ctrl.DB.Create(&test).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "A test already exists for this level")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create level test")
	}

	return helper.JsonCreated(c, "Level test generated", test)
}

// =============================
// ❌ Delete level test
// =============================
func (ctrl *LevelTestController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.LevelTestModel{}, "level_test_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete level test")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Level test not found")
	}
	return helper.JsonDeleted(c, "Level test deleted", fiber.Map{"level_test_id": id})
}
