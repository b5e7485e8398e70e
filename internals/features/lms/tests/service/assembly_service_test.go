package service

import (
	"testing"

	"edulevels_backend/internals/features/lms/tests/dto"
)

func lookupFrom(known map[string]dto.AssembledQuestion) QuestionLookup {
	return func(ids []string) (map[string]dto.AssembledQuestion, error) {
		out := map[string]dto.AssembledQuestion{}
		for _, id := range ids {
			if q, ok := known[id]; ok {
				out[id] = q
			}
		}
		return out, nil
	}
}

func TestAssembleTestPreservesOrder(t *testing.T) {
	known := map[string]dto.AssembledQuestion{
		"q1": {ID: "q1", Question: "first"},
		"q2": {ID: "q2", Question: "second"},
	}
	refs := []dto.QuestionRef{
		dto.ByReference("q2"),
		dto.InlineQuestion(dto.AssembledQuestion{ID: "x", Question: "inline"}),
		dto.ByReference("q1"),
	}

	out, err := AssembleTest(refs, lookupFrom(known))
	if err != nil {
		t.Fatalf("AssembleTest: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d questions, want 3", len(out))
	}
	if out[0].ID != "q2" || out[1].ID != "x" || out[2].ID != "q1" {
		t.Errorf("order not preserved: %q, %q, %q", out[0].ID, out[1].ID, out[2].ID)
	}
}

func TestAssembleTestDropsUnresolvedRefs(t *testing.T) {
	known := map[string]dto.AssembledQuestion{
		"q1": {ID: "q1", Question: "first"},
	}
	refs := []dto.QuestionRef{
		dto.ByReference("missing"),
		dto.ByReference("q1"),
		dto.ByReference("also-missing"),
	}

	out, err := AssembleTest(refs, lookupFrom(known))
	if err != nil {
		t.Fatalf("AssembleTest: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d questions, want 1", len(out))
	}
	if out[0].ID != "q1" {
		t.Errorf("got %q, want q1", out[0].ID)
	}
}

func TestAssembleTestNeverLongerThanInput(t *testing.T) {
	refs := []dto.QuestionRef{
		dto.InlineQuestion(dto.AssembledQuestion{ID: "a"}),
		dto.ByReference("gone"),
	}
	out, err := AssembleTest(refs, lookupFrom(nil))
	if err != nil {
		t.Fatalf("AssembleTest: %v", err)
	}
	if len(out) > len(refs) {
		t.Errorf("output %d longer than input %d", len(out), len(refs))
	}
}

func TestAssembleTestEmptyInput(t *testing.T) {
	out, err := AssembleTest(nil, lookupFrom(nil))
	if err != nil {
		t.Fatalf("AssembleTest: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("got %d questions, want 0", len(out))
	}
}

func TestAssembleTestSortsInlineOptions(t *testing.T) {
	refs := []dto.QuestionRef{
		dto.InlineQuestion(dto.AssembledQuestion{
			ID: "q",
			Options: []dto.AssembledOption{
				{ID: "3", OptionLetter: "C"},
				{ID: "1", OptionLetter: "A"},
				{ID: "2", OptionLetter: "B"},
			},
		}),
	}

	out, err := AssembleTest(refs, lookupFrom(nil))
	if err != nil {
		t.Fatalf("AssembleTest: %v", err)
	}
	letters := []string{}
	for _, o := range out[0].Options {
		letters = append(letters, o.OptionLetter)
	}
	if letters[0] != "A" || letters[1] != "B" || letters[2] != "C" {
		t.Errorf("options not sorted: %v", letters)
	}
}
