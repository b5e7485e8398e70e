package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	moduleModel "edulevels_backend/internals/features/lms/modules/model"
)

// LevelTestModel stores one assessment per level. The questions column is a
// JSONB array whose elements are either a question id string or a fully
// inlined question object (the random generator writes the latter).
// The unique index on level_test_level_id makes duplicate creation an atomic
// loser, never a check-then-insert race.
type LevelTestModel struct {
	LevelTestID             uuid.UUID      `gorm:"column:level_test_id;type:uuid;default:gen_random_uuid();primaryKey" json:"level_test_id"`
	LevelTestTitle          string         `gorm:"column:level_test_title;type:varchar(255);not null" json:"level_test_title"`
	LevelTestDescription    string         `gorm:"column:level_test_description;type:text" json:"level_test_description"`
	LevelTestLevelID        uuid.UUID      `gorm:"column:level_test_level_id;type:uuid;not null;unique" json:"level_test_level_id"`
	LevelTestQuestions      datatypes.JSON `gorm:"column:level_test_questions;type:jsonb" json:"level_test_questions"`
	LevelTestTotalQuestions int            `gorm:"column:level_test_total_questions;not null;default:0" json:"level_test_total_questions"`
	LevelTestPassingScore   int            `gorm:"column:level_test_passing_score;not null;default:70" json:"level_test_passing_score"`
	LevelTestTimeLimit      int            `gorm:"column:level_test_time_limit;not null;default:1800" json:"level_test_time_limit"`
	LevelTestIsActive       bool           `gorm:"column:level_test_is_active;not null;default:true" json:"level_test_is_active"`
	LevelTestCreatedAt      time.Time      `gorm:"column:level_test_created_at;autoCreateTime" json:"level_test_created_at"`

	Level *moduleModel.LevelModel `gorm:"foreignKey:LevelTestLevelID;references:LevelID;constraint:OnDelete:CASCADE" json:"level,omitempty"`
}

func (LevelTestModel) TableName() string {
	return "level_tests"
}
