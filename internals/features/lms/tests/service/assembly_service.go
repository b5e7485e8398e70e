package service

import (
	"gorm.io/gorm"

	"edulevels_backend/internals/features/lms/tests/dto"
	"edulevels_backend/internals/features/lms/tests/model"
)

// QuestionLookup resolves a batch of question ids to their normalized shape.
// Ids that do not resolve are simply absent from the map.
type QuestionLookup func(ids []string) (map[string]dto.AssembledQuestion, error)

// AssembleTest resolves a heterogeneous question-reference list into the
// normalized payload:
//   - reference elements are looked up in one batch; misses are dropped
//     silently, the rest of the test still assembles
//   - inline elements pass through untouched except for option sorting
//   - stored order is preserved for surviving elements, so the output is
//     never longer than the input
func AssembleTest(refs []dto.QuestionRef, lookup QuestionLookup) ([]dto.AssembledQuestion, error) {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		if !ref.IsInline() && ref.ID != "" {
			ids = append(ids, ref.ID)
		}
	}

	resolved := map[string]dto.AssembledQuestion{}
	if len(ids) > 0 {
		var err error
		resolved, err = lookup(ids)
		if err != nil {
			return nil, err
		}
	}

	out := make([]dto.AssembledQuestion, 0, len(refs))
	for _, ref := range refs {
		if ref.IsInline() {
			q := *ref.Inline
			q.SortOptions()
			out = append(out, q)
			continue
		}
		q, ok := resolved[ref.ID]
		if !ok {
			// stale or fabricated reference: drop, don't fail the test
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

// QuestionLookupFromDB is the production lookup: one query with options
// preloaded, keyed by question id, options already sorted.
func QuestionLookupFromDB(db *gorm.DB) QuestionLookup {
	return func(ids []string) (map[string]dto.AssembledQuestion, error) {
		var questions []model.TestQuestionModel
		if err := db.
			Preload("Options").
			Where("test_question_id IN ?", ids).
			Find(&questions).Error; err != nil {
			return nil, err
		}

		resolved := make(map[string]dto.AssembledQuestion, len(questions))
		for _, q := range questions {
			resolved[q.TestQuestionID.String()] = dto.ToAssembledQuestion(q)
		}
		return resolved, nil
	}
}

// AssembleLevelTest builds the full response DTO for a stored level test.
func AssembleLevelTest(db *gorm.DB, t model.LevelTestModel) (dto.NormalizedTestDTO, error) {
	questions, err := AssembleTest(dto.ParseQuestionRefs(t.LevelTestQuestions), QuestionLookupFromDB(db))
	if err != nil {
		return dto.NormalizedTestDTO{}, err
	}
	return dto.NormalizedTestDTO{
		ID:             t.LevelTestID.String(),
		Title:          t.LevelTestTitle,
		Description:    t.LevelTestDescription,
		TotalQuestions: t.LevelTestTotalQuestions,
		PassingScore:   t.LevelTestPassingScore,
		TimeLimit:      t.LevelTestTimeLimit,
		IsActive:       t.LevelTestIsActive,
		CreatedAt:      t.LevelTestCreatedAt,
		Questions:      questions,
	}, nil
}

// AssembleSubTopicTest builds the full response DTO for a stored subtopic test.
func AssembleSubTopicTest(db *gorm.DB, t model.SubTopicTestModel) (dto.NormalizedTestDTO, error) {
	questions, err := AssembleTest(dto.ParseQuestionRefs(t.SubTopicTestQuestions), QuestionLookupFromDB(db))
	if err != nil {
		return dto.NormalizedTestDTO{}, err
	}
	return dto.NormalizedTestDTO{
		ID:             t.SubTopicTestID.String(),
		Title:          t.SubTopicTestTitle,
		Description:    t.SubTopicTestDescription,
		TotalQuestions: t.SubTopicTestTotalQuestions,
		PassingScore:   t.SubTopicTestPassingScore,
		TimeLimit:      t.SubTopicTestTimeLimit,
		IsActive:       t.SubTopicTestIsActive,
		CreatedAt:      t.SubTopicTestCreatedAt,
		Questions:      questions,
	}, nil
}
