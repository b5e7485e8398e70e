package seeds

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"gorm.io/gorm"

	moduleModel "edulevels_backend/internals/features/lms/modules/model"
	testModel "edulevels_backend/internals/features/lms/tests/model"
	testService "edulevels_backend/internals/features/lms/tests/service"
)

// SeedRandomLevelTests creates a randomly generated test for every level
// that does not have one yet, sampling from the active question bank.
func SeedRandomLevelTests(db *gorm.DB) error {
	var levels []moduleModel.LevelModel
	if err := db.Find(&levels).Error; err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	created := 0

	for _, level := range levels {
		var existing testModel.LevelTestModel
		if err := db.First(&existing, "level_test_level_id = ?", level.LevelID).Error; err == nil {
			continue
		}

		questions, err := testService.GenerateRandomQuestions(db, testService.DefaultRandomQuestionCount, rng)
		if err != nil {
			return err
		}
		if len(questions) == 0 {
			log.Println("ℹ️ Question bank is empty, skipping level test seeding")
			return nil
		}

		questionsJSON, err := testService.InlineQuestionsJSON(questions)
		if err != nil {
			return err
		}

		test := testModel.LevelTestModel{
			LevelTestTitle:          fmt.Sprintf("%s Assessment", level.LevelTitle),
			LevelTestDescription:    "Auto-generated assessment",
			LevelTestLevelID:        level.LevelID,
			LevelTestQuestions:      questionsJSON,
			LevelTestTotalQuestions: len(questions),
		}
		if err := db.Create(&test).Error; err != nil {
			log.Printf("❌ Failed to seed test for level %s: %v", level.LevelID, err)
			continue
		}
		created++
	}

	log.Printf("✅ Level tests seeded (%d created)", created)
	return nil
}
