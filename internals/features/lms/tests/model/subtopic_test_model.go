package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	moduleModel "edulevels_backend/internals/features/lms/modules/model"
)

// SubTopicTestModel mirrors LevelTestModel at the subtopic tier, with the
// same one-test-per-subtopic unique constraint.
type SubTopicTestModel struct {
	SubTopicTestID             uuid.UUID      `gorm:"column:subtopic_test_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subtopic_test_id"`
	SubTopicTestTitle          string         `gorm:"column:subtopic_test_title;type:varchar(255);not null" json:"subtopic_test_title"`
	SubTopicTestDescription    string         `gorm:"column:subtopic_test_description;type:text" json:"subtopic_test_description"`
	SubTopicTestSubTopicID     uuid.UUID      `gorm:"column:subtopic_test_subtopic_id;type:uuid;not null;unique" json:"subtopic_test_subtopic_id"`
	SubTopicTestQuestions      datatypes.JSON `gorm:"column:subtopic_test_questions;type:jsonb" json:"subtopic_test_questions"`
	SubTopicTestTotalQuestions int            `gorm:"column:subtopic_test_total_questions;not null;default:0" json:"subtopic_test_total_questions"`
	SubTopicTestPassingScore   int            `gorm:"column:subtopic_test_passing_score;not null;default:70" json:"subtopic_test_passing_score"`
	SubTopicTestTimeLimit      int            `gorm:"column:subtopic_test_time_limit;not null;default:1800" json:"subtopic_test_time_limit"`
	SubTopicTestIsActive       bool           `gorm:"column:subtopic_test_is_active;not null;default:true" json:"subtopic_test_is_active"`
	SubTopicTestCreatedAt      time.Time      `gorm:"column:subtopic_test_created_at;autoCreateTime" json:"subtopic_test_created_at"`

	SubTopic *moduleModel.SubTopicModel `gorm:"foreignKey:SubTopicTestSubTopicID;references:SubTopicID;constraint:OnDelete:CASCADE" json:"subtopic,omitempty"`
}

func (SubTopicTestModel) TableName() string {
	return "subtopic_tests"
}
