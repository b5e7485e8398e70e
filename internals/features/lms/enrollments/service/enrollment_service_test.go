package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"edulevels_backend/internals/features/lms/enrollments/model"
)

func intp(v int) *int    { return &v }
func boolp(v bool) *bool { return &v }

func TestApplyProgressUpdateRange(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name     string
		progress int
		wantErr  bool
	}{
		{"lower bound", 0, false},
		{"upper bound", 100, false},
		{"midway", 55, false},
		{"negative", -1, true},
		{"over 100", 150, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := model.ModuleEnrollmentModel{}
			err := ApplyProgressUpdate(&e, intp(tc.progress), nil, now)
			if tc.wantErr {
				fe, ok := err.(*fiber.Error)
				if !ok || fe.Code != fiber.StatusBadRequest {
					t.Fatalf("want 400 error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if e.ModuleEnrollmentProgressPercentage != tc.progress {
				t.Errorf("progress = %d, want %d", e.ModuleEnrollmentProgressPercentage, tc.progress)
			}
		})
	}
}

func TestApplyProgressUpdateOmittedProgressKept(t *testing.T) {
	e := model.ModuleEnrollmentModel{ModuleEnrollmentProgressPercentage: 40}
	if err := ApplyProgressUpdate(&e, nil, boolp(true), time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ModuleEnrollmentProgressPercentage != 40 {
		t.Errorf("progress changed to %d despite omission", e.ModuleEnrollmentProgressPercentage)
	}
}

func TestApplyProgressUpdateCompletedStampsNow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e := model.ModuleEnrollmentModel{}
	if err := ApplyProgressUpdate(&e, intp(0), boolp(true), now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ModuleEnrollmentCompletedAt == nil || !e.ModuleEnrollmentCompletedAt.Equal(now) {
		t.Errorf("completed_at = %v, want %v", e.ModuleEnrollmentCompletedAt, now)
	}
}

func TestApplyProgressUpdateClearsTimestamp(t *testing.T) {
	old := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// completed=false clears a prior stamp
	e := model.ModuleEnrollmentModel{ModuleEnrollmentCompletedAt: &old}
	if err := ApplyProgressUpdate(&e, nil, boolp(false), time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ModuleEnrollmentCompletedAt != nil {
		t.Error("completed=false did not clear completed_at")
	}

	// omitted completed clears it too: the overwrite is unconditional
	e = model.ModuleEnrollmentModel{ModuleEnrollmentCompletedAt: &old}
	if err := ApplyProgressUpdate(&e, intp(50), nil, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ModuleEnrollmentCompletedAt != nil {
		t.Error("omitted completed did not clear completed_at")
	}
}

func TestApplyProgressUpdateRejectedLeavesStateAlone(t *testing.T) {
	old := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	e := model.ModuleEnrollmentModel{
		ModuleEnrollmentProgressPercentage: 30,
		ModuleEnrollmentCompletedAt:        &old,
	}
	if err := ApplyProgressUpdate(&e, intp(200), boolp(true), time.Now()); err == nil {
		t.Fatal("want range error")
	}
	if e.ModuleEnrollmentProgressPercentage != 30 {
		t.Errorf("progress mutated on rejected update: %d", e.ModuleEnrollmentProgressPercentage)
	}
	if e.ModuleEnrollmentCompletedAt == nil || !e.ModuleEnrollmentCompletedAt.Equal(old) {
		t.Errorf("completed_at mutated on rejected update: %v", e.ModuleEnrollmentCompletedAt)
	}
}
