package model

import (
	"github.com/google/uuid"
)

// Options belong to one question. option_letter is the ordering key:
// responses always list options sorted ascending by letter.
type TestOptionModel struct {
	TestOptionID         uuid.UUID `gorm:"column:test_option_id;type:uuid;default:gen_random_uuid();primaryKey" json:"test_option_id"`
	TestOptionQuestionID uuid.UUID `gorm:"column:test_option_question_id;type:uuid;not null;index" json:"test_option_question_id"`
	TestOptionText       string    `gorm:"column:test_option_text;type:text;not null" json:"test_option_text"`
	TestOptionLetter     string    `gorm:"column:test_option_letter;type:varchar(1);not null" json:"test_option_letter"`
	TestOptionIsCorrect  bool      `gorm:"column:test_option_is_correct;not null;default:false" json:"test_option_is_correct"`

	Question *TestQuestionModel `gorm:"foreignKey:TestOptionQuestionID;references:TestQuestionID;constraint:OnDelete:CASCADE" json:"question,omitempty"`
}

func (TestOptionModel) TableName() string {
	return "test_options"
}
