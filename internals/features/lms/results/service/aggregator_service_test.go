package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"edulevels_backend/internals/constants"
	"edulevels_backend/internals/features/lms/results/dto"
	"edulevels_backend/internals/features/lms/results/model"
)

func levelResultAt(t time.Time) model.LevelTestResultModel {
	return model.LevelTestResultModel{
		LevelTestResultID:          uuid.New(),
		LevelTestResultCompletedAt: t,
	}
}

func subtopicResultAt(t time.Time) model.SubTopicTestResultModel {
	return model.SubTopicTestResultModel{
		SubTopicTestResultID:          uuid.New(),
		SubTopicTestResultCompletedAt: t,
	}
}

func TestNormalizeTypeFilter(t *testing.T) {
	cases := map[string]string{
		"level":    "level",
		"subtopic": "subtopic",
		"all":      "all",
		"":         "all",
		"bogus":    "all",
		"LEVEL":    "all",
	}
	for in, want := range cases {
		if got := NormalizeTypeFilter(in); got != want {
			t.Errorf("NormalizeTypeFilter(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCanViewResults(t *testing.T) {
	self := uuid.New()
	other := uuid.New()

	cases := []struct {
		name      string
		requester uuid.UUID
		role      string
		target    uuid.UUID
		want      bool
	}{
		{"own results as learner", self, constants.RoleLearner, self, true},
		{"other results as learner", self, constants.RoleLearner, other, false},
		{"other results as admin", self, constants.RoleAdmin, other, true},
		{"other results as master practitioner", self, constants.RoleMasterPractitioner, other, true},
		{"other results with unknown role", self, "moderator", other, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanViewResults(tc.requester, tc.role, tc.target); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMergeResultsOrdering(t *testing.T) {
	t10 := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	t20 := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

	merged := MergeResults(
		[]model.LevelTestResultModel{levelResultAt(t10)},
		[]model.SubTopicTestResultModel{subtopicResultAt(t20)},
		"all",
	)
	if len(merged) != 2 {
		t.Fatalf("got %d entries, want 2", len(merged))
	}
	if merged[0].Type != dto.ResultTypeSubTopic || merged[1].Type != dto.ResultTypeLevel {
		t.Errorf("not sorted newest first: %s, %s", merged[0].Type, merged[1].Type)
	}
}

func TestMergeResultsTieKeepsLevelFirst(t *testing.T) {
	tie := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	merged := MergeResults(
		[]model.LevelTestResultModel{levelResultAt(tie)},
		[]model.SubTopicTestResultModel{subtopicResultAt(tie)},
		"all",
	)
	if merged[0].Type != dto.ResultTypeLevel {
		t.Errorf("timestamp tie broke level-first order: %s first", merged[0].Type)
	}
}

func TestMergeResultsTypeFilter(t *testing.T) {
	now := time.Now()
	levels := []model.LevelTestResultModel{levelResultAt(now)}
	subs := []model.SubTopicTestResultModel{subtopicResultAt(now)}

	onlyLevel := MergeResults(levels, subs, dto.ResultTypeLevel)
	if len(onlyLevel) != 1 || onlyLevel[0].Type != dto.ResultTypeLevel {
		t.Errorf("level filter leaked: %+v", onlyLevel)
	}

	onlySub := MergeResults(levels, subs, dto.ResultTypeSubTopic)
	if len(onlySub) != 1 || onlySub[0].Type != dto.ResultTypeSubTopic {
		t.Errorf("subtopic filter leaked: %+v", onlySub)
	}
}

func TestMergeResultsSubTopicFieldNullForLevelEntries(t *testing.T) {
	merged := MergeResults(
		[]model.LevelTestResultModel{levelResultAt(time.Now())},
		nil,
		"all",
	)
	if merged[0].SubTopic != nil {
		t.Errorf("level entry carries subtopic ref: %+v", merged[0].SubTopic)
	}
}
