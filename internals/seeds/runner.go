package seeds

import (
	"log"
	"os"

	"gorm.io/gorm"
)

// Run executes the boot-time seed pass. Each seeder is idempotent; already
// present rows are skipped, so running on every boot is safe.
func Run(db *gorm.DB) error {
	log.Println("🌱 Running seeders...")

	questionsFile := os.Getenv("SEED_QUESTIONS_FILE")
	if questionsFile == "" {
		questionsFile = "internals/seeds/data/test_questions.json"
	}
	if err := SeedTestQuestionsFromJSON(db, questionsFile); err != nil {
		return err
	}

	if err := SeedRandomLevelTests(db); err != nil {
		return err
	}

	log.Println("🌱 Seeding done")
	return nil
}
