package dto

import (
	"time"

	"edulevels_backend/internals/features/lms/results/model"
)

const (
	ResultTypeLevel    = "level"
	ResultTypeSubTopic = "subtopic"
)

// ============================
// Combined response shape
// ============================

type ResultRefDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// CombinedTestResultDTO is the single shape both result streams project
// into. SubTopic stays null for level-type entries.
type CombinedTestResultDTO struct {
	ID             string        `json:"id"`
	Type           string        `json:"type"`
	Score          int           `json:"score"`
	TotalQuestions int           `json:"total_questions"`
	CorrectAnswers int           `json:"correct_answers"`
	Passed         bool          `json:"passed"`
	CompletedAt    time.Time     `json:"completed_at"`
	Test           ResultRefDTO  `json:"test"`
	Level          ResultRefDTO  `json:"level"`
	Module         ResultRefDTO  `json:"module"`
	SubTopic       *ResultRefDTO `json:"subtopic"`
}

// ============================
// Submit request DTOs
// ============================

type CreateLevelTestResultRequest struct {
	TestID         string `json:"test_id" validate:"required,uuid"`
	Score          int    `json:"score" validate:"min=0,max=100"`
	TotalQuestions int    `json:"total_questions" validate:"required,min=1"`
	CorrectAnswers int    `json:"correct_answers" validate:"min=0"`
	Passed         bool   `json:"passed"`
}

type CreateSubTopicTestResultRequest struct {
	TestID         string `json:"test_id" validate:"required,uuid"`
	Score          int    `json:"score" validate:"min=0,max=100"`
	TotalQuestions int    `json:"total_questions" validate:"required,min=1"`
	CorrectAnswers int    `json:"correct_answers" validate:"min=0"`
	Passed         bool   `json:"passed"`
}

// ============================
// Converters
// ============================

func ToCombinedFromLevel(m model.LevelTestResultModel) CombinedTestResultDTO {
	out := CombinedTestResultDTO{
		ID:             m.LevelTestResultID.String(),
		Type:           ResultTypeLevel,
		Score:          m.LevelTestResultScore,
		TotalQuestions: m.LevelTestResultTotalQuestions,
		CorrectAnswers: m.LevelTestResultCorrectAnswers,
		Passed:         m.LevelTestResultPassed,
		CompletedAt:    m.LevelTestResultCompletedAt,
		Test:           ResultRefDTO{ID: m.LevelTestResultTestID.String()},
		Level:          ResultRefDTO{ID: m.LevelTestResultLevelID.String()},
		Module:         ResultRefDTO{ID: m.LevelTestResultModuleID.String()},
		SubTopic:       nil,
	}
	if m.Test != nil {
		out.Test.Title = m.Test.LevelTestTitle
	}
	if m.Level != nil {
		out.Level.Title = m.Level.LevelTitle
	}
	if m.Module != nil {
		out.Module.Title = m.Module.ModuleTitle
	}
	return out
}

func ToCombinedFromSubTopic(m model.SubTopicTestResultModel) CombinedTestResultDTO {
	out := CombinedTestResultDTO{
		ID:             m.SubTopicTestResultID.String(),
		Type:           ResultTypeSubTopic,
		Score:          m.SubTopicTestResultScore,
		TotalQuestions: m.SubTopicTestResultTotalQuestions,
		CorrectAnswers: m.SubTopicTestResultCorrectAnswers,
		Passed:         m.SubTopicTestResultPassed,
		CompletedAt:    m.SubTopicTestResultCompletedAt,
		Test:           ResultRefDTO{ID: m.SubTopicTestResultTestID.String()},
		Level:          ResultRefDTO{ID: m.SubTopicTestResultLevelID.String()},
		Module:         ResultRefDTO{ID: m.SubTopicTestResultModuleID.String()},
		SubTopic:       &ResultRefDTO{ID: m.SubTopicTestResultSubTopicID.String()},
	}
	if m.Test != nil {
		out.Test.Title = m.Test.SubTopicTestTitle
	}
	if m.Level != nil {
		out.Level.Title = m.Level.LevelTitle
	}
	if m.Module != nil {
		out.Module.Title = m.Module.ModuleTitle
	}
	if m.SubTopic != nil {
		out.SubTopic.Title = m.SubTopic.SubTopicTitle
	}
	return out
}
