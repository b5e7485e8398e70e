package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edulevels_backend/internals/configs"
	certModel "edulevels_backend/internals/features/certificates/model"
	userModel "edulevels_backend/internals/features/users/user/model"
)

// ErrNotYetAvailable is returned when issuance is attempted before the
// availability moment; AvailableAt tells the caller when to come back.
type ErrNotYetAvailable struct {
	AvailableAt time.Time
}

func (e *ErrNotYetAvailable) Error() string {
	return "certificate is not yet available"
}

// CheckIssuable applies the issuance gate to a profile at a given moment.
// Pure over its inputs so the rules are testable without a database.
func CheckIssuable(profile *userModel.UserProfileModel, now time.Time) error {
	if profile == nil {
		return fiber.NewError(fiber.StatusNotFound, "User profile not found")
	}
	if !profile.UserProfileTestCompleted {
		return fiber.NewError(fiber.StatusBadRequest, "Final test has not been completed")
	}
	if profile.UserProfileCertificateIssued {
		return fiber.NewError(fiber.StatusBadRequest, "Certificate already issued")
	}
	if profile.UserProfileCertificateAvailableAt != nil && now.Before(*profile.UserProfileCertificateAvailableAt) {
		return &ErrNotYetAvailable{AvailableAt: *profile.UserProfileCertificateAvailableAt}
	}
	return nil
}

// IssueCertificate runs the gate and flips the issued flag exactly once.
// The conditional UPDATE keyed on certificate_issued=false makes concurrent
// attempts race to a single winner; losers see "already issued".
func IssueCertificate(db *gorm.DB, userID uuid.UUID) (*certModel.UserCertificateModel, error) {
	var profile userModel.UserProfileModel
	if err := db.First(&profile, "user_profile_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User profile not found")
		}
		return nil, err
	}

	now := time.Now().UTC()
	if err := CheckIssuable(&profile, now); err != nil {
		return nil, err
	}

	number := generateCertificateNumber(userID, now)
	url := certificateURL(number)

	var cert *certModel.UserCertificateModel
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&userModel.UserProfileModel{}).
			Where("user_profile_user_id = ? AND user_profile_certificate_issued = ?", userID, false).
			Updates(map[string]interface{}{
				"user_profile_certificate_issued": true,
				"user_profile_certificate_url":    url,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Certificate already issued")
		}

		record := certModel.UserCertificateModel{
			UserCertificateUserID:   userID,
			UserCertificateNumber:   number,
			UserCertificateURL:      url,
			UserCertificateIssuedAt: now,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		cert = &record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cert, nil
}

func generateCertificateNumber(userID uuid.UUID, now time.Time) string {
	short := strings.ToUpper(strings.ReplaceAll(userID.String(), "-", "")[:8])
	return fmt.Sprintf("CERT-%s-%s", now.Format("20060102"), short)
}

func certificateURL(number string) string {
	return fmt.Sprintf("%s/certificates/%s", strings.TrimRight(configs.AppBaseURL, "/"), number)
}
