package seeds

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"edulevels_backend/internals/features/lms/tests/model"
)

type questionSeed struct {
	Text    string `json:"text"`
	Options []struct {
		Letter    string `json:"letter"`
		Text      string `json:"text"`
		IsCorrect bool   `json:"is_correct"`
	} `json:"options"`
}

// SeedTestQuestionsFromJSON loads the question bank from a JSON file.
// Questions already present (matched by text) are skipped.
func SeedTestQuestionsFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Reading question file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("ℹ️ Question file not found, skipping: %v", err)
		return nil
	}

	var inputs []questionSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		return err
	}

	for _, data := range inputs {
		var existing model.TestQuestionModel
		if err := db.Where("test_question_text = ?", data.Text).First(&existing).Error; err == nil {
			continue
		}

		question := model.TestQuestionModel{
			TestQuestionText:     data.Text,
			TestQuestionIsActive: true,
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
			for _, opt := range data.Options {
				option := model.TestOptionModel{
					TestOptionQuestionID: question.TestQuestionID,
					TestOptionText:       opt.Text,
					TestOptionLetter:     opt.Letter,
					TestOptionIsCorrect:  opt.IsCorrect,
				}
				if err := tx.Create(&option).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			log.Printf("❌ Failed to seed question %q: %v", data.Text, err)
			continue
		}
	}

	log.Printf("✅ Question bank seeded (%d entries in file)", len(inputs))
	return nil
}
