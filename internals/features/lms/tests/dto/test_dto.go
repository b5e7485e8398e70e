package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"edulevels_backend/internals/features/lms/tests/model"
)

// ============================
// Response DTOs
// ============================

// NormalizedTestDTO is the assembled test payload: metadata plus resolved
// questions in their stored order.
type NormalizedTestDTO struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	TotalQuestions int                 `json:"total_questions"`
	PassingScore   int                 `json:"passing_score"`
	TimeLimit      int                 `json:"time_limit"`
	IsActive       bool                `json:"is_active"`
	CreatedAt      time.Time           `json:"created_at"`
	Questions      []AssembledQuestion `json:"questions"`
}

type TestQuestionDTO struct {
	TestQuestionID       string            `json:"test_question_id"`
	TestQuestionText     string            `json:"test_question_text"`
	TestQuestionIsActive bool              `json:"test_question_is_active"`
	Options              []AssembledOption `json:"options"`
}

// ============================
// Create Request DTOs
// ============================

type CreateLevelTestRequest struct {
	LevelTestTitle       string            `json:"level_test_title" validate:"required"`
	LevelTestDescription string            `json:"level_test_description"`
	LevelTestLevelID     string            `json:"level_test_level_id" validate:"required,uuid"`
	LevelTestQuestions   []json.RawMessage `json:"level_test_questions"`
	LevelTestPassingScore *int             `json:"level_test_passing_score" validate:"omitempty,min=0,max=100"`
	LevelTestTimeLimit    *int             `json:"level_test_time_limit" validate:"omitempty,min=1"`
}

type CreateSubTopicTestRequest struct {
	SubTopicTestTitle        string            `json:"subtopic_test_title" validate:"required"`
	SubTopicTestDescription  string            `json:"subtopic_test_description"`
	SubTopicTestSubTopicID   string            `json:"subtopic_test_subtopic_id" validate:"required,uuid"`
	SubTopicTestQuestions    []json.RawMessage `json:"subtopic_test_questions"`
	SubTopicTestPassingScore *int              `json:"subtopic_test_passing_score" validate:"omitempty,min=0,max=100"`
	SubTopicTestTimeLimit    *int              `json:"subtopic_test_time_limit" validate:"omitempty,min=1"`
}

type CreateTestQuestionRequest struct {
	TestQuestionText string `json:"test_question_text" validate:"required"`
	Options          []struct {
		TestOptionText   string `json:"test_option_text" validate:"required"`
		TestOptionLetter string `json:"test_option_letter" validate:"required,len=1"`
		TestOptionIsCorrect bool `json:"test_option_is_correct"`
	} `json:"options" validate:"required,min=2,dive"`
}

// ============================
// Converters
// ============================

// QuestionsJSON re-encodes the heterogeneous questions array for storage.
// nil input stores an empty array rather than SQL NULL.
func QuestionsJSON(raw []json.RawMessage) datatypes.JSON {
	if raw == nil {
		return datatypes.JSON([]byte("[]"))
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}

func ToTestQuestionDTO(m model.TestQuestionModel) TestQuestionDTO {
	q := ToAssembledQuestion(m)
	return TestQuestionDTO{
		TestQuestionID:       m.TestQuestionID.String(),
		TestQuestionText:     m.TestQuestionText,
		TestQuestionIsActive: m.TestQuestionIsActive,
		Options:              q.Options,
	}
}

// ToAssembledQuestion converts a question row (with its options loaded) into
// the normalized shape used by assembled tests, options sorted by letter.
func ToAssembledQuestion(m model.TestQuestionModel) AssembledQuestion {
	q := AssembledQuestion{
		ID:       m.TestQuestionID.String(),
		Question: m.TestQuestionText,
		Options:  make([]AssembledOption, 0, len(m.Options)),
	}
	for _, opt := range m.Options {
		q.Options = append(q.Options, AssembledOption{
			ID:           opt.TestOptionID.String(),
			OptionText:   opt.TestOptionText,
			OptionLetter: opt.TestOptionLetter,
			IsCorrect:    opt.TestOptionIsCorrect,
		})
	}
	q.SortOptions()
	return q
}
