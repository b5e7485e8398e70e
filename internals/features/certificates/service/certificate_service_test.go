package service

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	userModel "edulevels_backend/internals/features/users/user/model"
)

func timep(t time.Time) *time.Time { return &t }

func TestCheckIssuableNilProfile(t *testing.T) {
	err := CheckIssuable(nil, time.Now())
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusNotFound {
		t.Fatalf("want 404 error, got %v", err)
	}
}

func TestCheckIssuableTestNotCompleted(t *testing.T) {
	profile := &userModel.UserProfileModel{UserProfileTestCompleted: false}
	err := CheckIssuable(profile, time.Now())
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusBadRequest {
		t.Fatalf("want 400 error, got %v", err)
	}
}

func TestCheckIssuableAlreadyIssued(t *testing.T) {
	profile := &userModel.UserProfileModel{
		UserProfileTestCompleted:     true,
		UserProfileCertificateIssued: true,
	}
	err := CheckIssuable(profile, time.Now())
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusBadRequest {
		t.Fatalf("want 400 error, got %v", err)
	}
}

func TestCheckIssuableBeforeAvailability(t *testing.T) {
	availableAt := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	profile := &userModel.UserProfileModel{
		UserProfileTestCompleted:          true,
		UserProfileCertificateAvailableAt: timep(availableAt),
	}

	err := CheckIssuable(profile, availableAt.Add(-time.Hour))
	var notYet *ErrNotYetAvailable
	if !errors.As(err, &notYet) {
		t.Fatalf("want ErrNotYetAvailable, got %v", err)
	}
	if !notYet.AvailableAt.Equal(availableAt) {
		t.Errorf("AvailableAt = %v, want %v", notYet.AvailableAt, availableAt)
	}
}

func TestCheckIssuableAtAndAfterAvailability(t *testing.T) {
	availableAt := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	profile := &userModel.UserProfileModel{
		UserProfileTestCompleted:          true,
		UserProfileCertificateAvailableAt: timep(availableAt),
	}

	// exactly at the boundary counts as available
	if err := CheckIssuable(profile, availableAt); err != nil {
		t.Errorf("at boundary: %v", err)
	}
	if err := CheckIssuable(profile, availableAt.Add(time.Hour)); err != nil {
		t.Errorf("after boundary: %v", err)
	}
}

func TestCheckIssuableNoAvailabilityGate(t *testing.T) {
	profile := &userModel.UserProfileModel{UserProfileTestCompleted: true}
	if err := CheckIssuable(profile, time.Now()); err != nil {
		t.Errorf("profile without availability gate should be issuable: %v", err)
	}
}
