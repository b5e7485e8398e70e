package dto

import (
	"encoding/json"
	"testing"
)

func TestQuestionRefUnmarshalString(t *testing.T) {
	var ref QuestionRef
	if err := json.Unmarshal([]byte(`"abc-123"`), &ref); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ref.IsInline() {
		t.Error("string element decoded as inline")
	}
	if ref.ID != "abc-123" {
		t.Errorf("got id %q, want abc-123", ref.ID)
	}
}

func TestQuestionRefUnmarshalObject(t *testing.T) {
	raw := `{"id":"q1","question":"2+2?","options":[{"id":"o1","optionText":"4","optionLetter":"A","isCorrect":true}]}`
	var ref QuestionRef
	if err := json.Unmarshal([]byte(raw), &ref); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !ref.IsInline() {
		t.Fatal("object element not decoded as inline")
	}
	if ref.Inline.Question != "2+2?" {
		t.Errorf("got question %q", ref.Inline.Question)
	}
	if len(ref.Inline.Options) != 1 || !ref.Inline.Options[0].IsCorrect {
		t.Errorf("options not carried through: %+v", ref.Inline.Options)
	}
}

func TestQuestionRefMarshalRoundTrip(t *testing.T) {
	refs := []QuestionRef{
		ByReference("q1"),
		InlineQuestion(AssembledQuestion{ID: "q2", Question: "inline"}),
	}
	b, err := json.Marshal(refs)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded := ParseQuestionRefs(b)
	if len(decoded) != 2 {
		t.Fatalf("got %d refs, want 2", len(decoded))
	}
	if decoded[0].ID != "q1" || decoded[0].IsInline() {
		t.Errorf("first element wrong: %+v", decoded[0])
	}
	if !decoded[1].IsInline() || decoded[1].Inline.ID != "q2" {
		t.Errorf("second element wrong: %+v", decoded[1])
	}
}

func TestParseQuestionRefsMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"empty", "", 0},
		{"null", "null", 0},
		{"not an array", `{"oops":true}`, 0},
		{"scalar", "42", 0},
		{"bad element dropped", `["q1", 42, "q2"]`, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseQuestionRefs([]byte(tc.raw))
			if len(got) != tc.want {
				t.Errorf("got %d refs, want %d", len(got), tc.want)
			}
		})
	}
}

func TestSortOptionsEmptyLetterFirst(t *testing.T) {
	q := AssembledQuestion{
		Options: []AssembledOption{
			{ID: "1", OptionLetter: "B"},
			{ID: "2", OptionLetter: ""},
			{ID: "3", OptionLetter: "A"},
		},
	}
	q.SortOptions()
	if q.Options[0].OptionLetter != "" || q.Options[1].OptionLetter != "A" || q.Options[2].OptionLetter != "B" {
		t.Errorf("unexpected order: %+v", q.Options)
	}
}

func TestSortOptionsStable(t *testing.T) {
	q := AssembledQuestion{
		Options: []AssembledOption{
			{ID: "first", OptionLetter: "A"},
			{ID: "second", OptionLetter: "A"},
		},
	}
	q.SortOptions()
	if q.Options[0].ID != "first" || q.Options[1].ID != "second" {
		t.Errorf("equal letters reordered: %+v", q.Options)
	}
}
