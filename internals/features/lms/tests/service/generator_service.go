package service

import (
	"encoding/json"
	"math/rand"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"edulevels_backend/internals/features/lms/tests/dto"
	"edulevels_backend/internals/features/lms/tests/model"
)

// DefaultRandomQuestionCount caps how many questions a generated test holds.
const DefaultRandomQuestionCount = 10

// PickRandomQuestions samples up to limit questions from the eligible pool,
// preserving none of the input order. Fewer than limit is fine.
func PickRandomQuestions(pool []dto.AssembledQuestion, limit int, rng *rand.Rand) []dto.AssembledQuestion {
	if limit <= 0 || len(pool) == 0 {
		return nil
	}
	picked := make([]dto.AssembledQuestion, len(pool))
	copy(picked, pool)
	rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	if len(picked) > limit {
		picked = picked[:limit]
	}
	return picked
}

// GenerateRandomQuestions loads the active question bank (options included)
// and samples up to limit of them, fully inlined. The assembly service
// accepts the produced records as-is because inline elements pass through.
func GenerateRandomQuestions(db *gorm.DB, limit int, rng *rand.Rand) ([]dto.AssembledQuestion, error) {
	var bank []model.TestQuestionModel
	if err := db.
		Preload("Options").
		Where("test_question_is_active = ?", true).
		Find(&bank).Error; err != nil {
		return nil, err
	}

	pool := make([]dto.AssembledQuestion, 0, len(bank))
	for _, q := range bank {
		pool = append(pool, dto.ToAssembledQuestion(q))
	}
	return PickRandomQuestions(pool, limit, rng), nil
}

// InlineQuestionsJSON encodes sampled questions as the JSONB questions array
// of a new test record (inline objects, not identifier strings).
func InlineQuestionsJSON(questions []dto.AssembledQuestion) (datatypes.JSON, error) {
	refs := make([]dto.QuestionRef, 0, len(questions))
	for _, q := range questions {
		refs = append(refs, dto.InlineQuestion(q))
	}
	b, err := json.Marshal(refs)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
