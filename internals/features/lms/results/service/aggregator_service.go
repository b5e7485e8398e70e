package service

import (
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edulevels_backend/internals/constants"
	"edulevels_backend/internals/features/lms/results/dto"
	"edulevels_backend/internals/features/lms/results/model"
)

// NormalizeTypeFilter maps the ?type= query value onto a known filter.
// Anything unrecognized behaves as "all" — permissive default, not an error.
func NormalizeTypeFilter(raw string) string {
	switch raw {
	case dto.ResultTypeLevel, dto.ResultTypeSubTopic:
		return raw
	default:
		return "all"
	}
}

// CanViewResults applies the visibility rule: everyone reads their own
// results, only privileged roles read someone else's.
func CanViewResults(requesterID uuid.UUID, requesterRole string, targetID uuid.UUID) bool {
	if requesterID == targetID {
		return true
	}
	return constants.IsPrivileged(requesterRole)
}

// MergeResults tags, filters, concatenates and orders the two result
// streams. Sort is stable and level rows are appended first, so timestamp
// ties keep level-then-subtopic fetch order.
func MergeResults(levelResults []model.LevelTestResultModel, subTopicResults []model.SubTopicTestResultModel, typeFilter string) []dto.CombinedTestResultDTO {
	combined := make([]dto.CombinedTestResultDTO, 0, len(levelResults)+len(subTopicResults))

	if typeFilter != dto.ResultTypeSubTopic {
		for _, r := range levelResults {
			combined = append(combined, dto.ToCombinedFromLevel(r))
		}
	}
	if typeFilter != dto.ResultTypeLevel {
		for _, r := range subTopicResults {
			combined = append(combined, dto.ToCombinedFromSubTopic(r))
		}
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].CompletedAt.After(combined[j].CompletedAt)
	})
	return combined
}

// ListResults fetches both streams for the target user and merges them.
// Visibility is the caller's job: controllers resolve the identity and run
// CanViewResults before reaching here.
func ListResults(db *gorm.DB, targetID uuid.UUID, typeFilter string) ([]dto.CombinedTestResultDTO, error) {
	filter := NormalizeTypeFilter(typeFilter)

	var levelResults []model.LevelTestResultModel
	if filter != dto.ResultTypeSubTopic {
		if err := db.
			Preload("Test").Preload("Level").Preload("Module").
			Where("level_test_result_user_id = ?", targetID).
			Order("level_test_result_completed_at DESC").
			Find(&levelResults).Error; err != nil {
			return nil, err
		}
	}

	var subTopicResults []model.SubTopicTestResultModel
	if filter != dto.ResultTypeLevel {
		if err := db.
			Preload("Test").Preload("Level").Preload("Module").Preload("SubTopic").
			Where("subtopic_test_result_user_id = ?", targetID).
			Order("subtopic_test_result_completed_at DESC").
			Find(&subTopicResults).Error; err != nil {
			return nil, err
		}
	}

	return MergeResults(levelResults, subTopicResults, filter), nil
}
