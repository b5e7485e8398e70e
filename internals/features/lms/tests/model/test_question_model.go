package model

import (
	"time"

	"github.com/google/uuid"
)

// TestQuestionModel is the canonical question bank row. Only active questions
// are eligible for random test generation.
type TestQuestionModel struct {
	TestQuestionID        uuid.UUID `gorm:"column:test_question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"test_question_id"`
	TestQuestionText      string    `gorm:"column:test_question_text;type:text;not null" json:"test_question_text"`
	TestQuestionIsActive  bool      `gorm:"column:test_question_is_active;not null;default:true" json:"test_question_is_active"`
	TestQuestionCreatedAt time.Time `gorm:"column:test_question_created_at;autoCreateTime" json:"test_question_created_at"`

	Options []TestOptionModel `gorm:"foreignKey:TestOptionQuestionID;references:TestQuestionID" json:"options,omitempty"`
}

func (TestQuestionModel) TableName() string {
	return "test_questions"
}
