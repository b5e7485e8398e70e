package service

import (
	"math/rand"
	"testing"

	"edulevels_backend/internals/features/lms/tests/dto"
)

func questionPool(n int) []dto.AssembledQuestion {
	pool := make([]dto.AssembledQuestion, n)
	for i := range pool {
		pool[i] = dto.AssembledQuestion{ID: string(rune('a' + i))}
	}
	return pool
}

func TestPickRandomQuestionsLimits(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	cases := []struct {
		name  string
		pool  int
		limit int
		want  int
	}{
		{"pool larger than limit", 20, 10, 10},
		{"pool smaller than limit", 4, 10, 4},
		{"exact", 10, 10, 10},
		{"empty pool", 0, 10, 0},
		{"zero limit yields nothing", 15, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PickRandomQuestions(questionPool(tc.pool), tc.limit, rng)
			if len(got) != tc.want {
				t.Errorf("got %d questions, want %d", len(got), tc.want)
			}
		})
	}
}

func TestPickRandomQuestionsNoDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	got := PickRandomQuestions(questionPool(26), 10, rng)

	seen := map[string]bool{}
	for _, q := range got {
		if seen[q.ID] {
			t.Fatalf("duplicate question %q in sample", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestPickRandomQuestionsDoesNotMutatePool(t *testing.T) {
	pool := questionPool(10)
	original := make([]string, len(pool))
	for i, q := range pool {
		original[i] = q.ID
	}

	rng := rand.New(rand.NewSource(7))
	_ = PickRandomQuestions(pool, 5, rng)

	for i, q := range pool {
		if q.ID != original[i] {
			t.Fatalf("input pool mutated at %d: %q != %q", i, q.ID, original[i])
		}
	}
}
