package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"edulevels_backend/internals/configs"
	certModel "edulevels_backend/internals/features/certificates/model"
	enrollmentModel "edulevels_backend/internals/features/lms/enrollments/model"
	moduleModel "edulevels_backend/internals/features/lms/modules/model"
	resultModel "edulevels_backend/internals/features/lms/results/model"
	testModel "edulevels_backend/internals/features/lms/tests/model"
	userModel "edulevels_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=edulevels&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
		// unique violations must come back as gorm.ErrDuplicatedKey so the
		// enroll / create-test endpoints can answer Conflict deterministically
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	DB = db
	log.Println("✅ Connected to PostgreSQL.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Println("[WARN] Could not access sql.DB to tune pool:", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}

// AutoMigrate runs schema migration for every table in dependency order.
// Guarded by DB_AUTOMIGRATE so production deploys can rely on managed migrations.
func AutoMigrate() {
	if getenv("DB_AUTOMIGRATE", "true") != "true" {
		log.Println("[INFO] DB_AUTOMIGRATE disabled, skipping schema migration")
		return
	}

	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&userModel.UserProfileModel{},
		&moduleModel.ModuleModel{},
		&moduleModel.LevelModel{},
		&moduleModel.SubTopicModel{},
		&moduleModel.SubTopicContentModel{},
		&testModel.TestQuestionModel{},
		&testModel.TestOptionModel{},
		&testModel.LevelTestModel{},
		&testModel.SubTopicTestModel{},
		&enrollmentModel.ModuleEnrollmentModel{},
		&resultModel.LevelTestResultModel{},
		&resultModel.SubTopicTestResultModel{},
		&certModel.UserCertificateModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	log.Println("✅ Schema migration complete.")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
