package dto

import (
	"encoding/json"
	"sort"
)

// AssembledOption is one answer option in its normalized wire shape.
type AssembledOption struct {
	ID         string `json:"id"`
	OptionText string `json:"optionText"`
	// Single ordering letter. Lexicographic ascending, empty string first.
	OptionLetter string `json:"optionLetter"`
	IsCorrect    bool   `json:"isCorrect"`
}

// AssembledQuestion is the normalized question+options payload every test
// response carries, regardless of how the question was referenced.
type AssembledQuestion struct {
	ID       string            `json:"id"`
	Question string            `json:"question"`
	Options  []AssembledOption `json:"options"`
}

// SortOptions orders options ascending by letter. Plain string comparison on
// purpose: "10" sorts before "2", and "" sorts before everything.
func (q *AssembledQuestion) SortOptions() {
	sort.SliceStable(q.Options, func(i, j int) bool {
		return q.Options[i].OptionLetter < q.Options[j].OptionLetter
	})
}

// QuestionRef is the tagged variant behind a stored test's questions array.
// Each element is either a bare question id string (ByReference) or a fully
// inlined question object (Inline). Exactly one of the two is set.
type QuestionRef struct {
	ID     string
	Inline *AssembledQuestion
}

func (r QuestionRef) IsInline() bool {
	return r.Inline != nil
}

// ByReference builds a reference-only element.
func ByReference(id string) QuestionRef {
	return QuestionRef{ID: id}
}

// InlineQuestion builds a fully embedded element.
func InlineQuestion(q AssembledQuestion) QuestionRef {
	return QuestionRef{Inline: &q}
}

func (r *QuestionRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.Inline = nil
		return nil
	}

	var q AssembledQuestion
	if err := json.Unmarshal(data, &q); err != nil {
		return err
	}
	r.ID = ""
	r.Inline = &q
	return nil
}

func (r QuestionRef) MarshalJSON() ([]byte, error) {
	if r.Inline != nil {
		return json.Marshal(r.Inline)
	}
	return json.Marshal(r.ID)
}

// ParseQuestionRefs decodes a raw questions column. A missing, invalid or
// non-array value yields an empty list, never an error: a malformed test must
// still be servable with zero questions. Unparseable elements inside an
// otherwise valid array are dropped individually.
func ParseQuestionRefs(raw []byte) []QuestionRef {
	if len(raw) == 0 {
		return nil
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil
	}
	refs := make([]QuestionRef, 0, len(elements))
	for _, el := range elements {
		var ref QuestionRef
		if err := json.Unmarshal(el, &ref); err != nil {
			continue
		}
		refs = append(refs, ref)
	}
	return refs
}
