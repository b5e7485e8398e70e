package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"edulevels_backend/internals/features/lms/enrollments/model"
	moduleModel "edulevels_backend/internals/features/lms/modules/model"
)

// Enroll creates the (user, module) enrollment. The uniqueness check lives in
// the database index: under two concurrent calls exactly one insert wins and
// the other surfaces Conflict.
func Enroll(db *gorm.DB, userID, moduleID uuid.UUID) (model.ModuleEnrollmentModel, error) {
	var mod moduleModel.ModuleModel
	if err := db.First(&mod, "module_id = ?", moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ModuleEnrollmentModel{}, fiber.NewError(fiber.StatusNotFound, "Module not found")
		}
		return model.ModuleEnrollmentModel{}, err
	}
	if !mod.ModuleIsActive {
		return model.ModuleEnrollmentModel{}, fiber.NewError(fiber.StatusBadRequest, "Module is not active")
	}

	enrollment := model.ModuleEnrollmentModel{
		ModuleEnrollmentUserID:             userID,
		ModuleEnrollmentModuleID:           moduleID,
		ModuleEnrollmentProgressPercentage: 0,
		ModuleEnrollmentCompletedAt:        nil,
		ModuleEnrollmentPaymentStatus:      model.PaymentStatusPending,
		ModuleEnrollmentCompletedSubTopics: datatypes.JSON([]byte("[]")),
	}
	if err := db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.ModuleEnrollmentModel{}, fiber.NewError(fiber.StatusConflict, "Already enrolled in this module")
		}
		return model.ModuleEnrollmentModel{}, err
	}
	return enrollment, nil
}

// ApplyProgressUpdate mutates the enrollment in memory per the update
// contract:
//   - progress replaced only when supplied, and must stay inside [0,100]
//   - completed_at is overwritten on every call: stamped when completed is
//     true, cleared otherwise — even when the field was omitted. Toggling
//     completed off therefore erases a prior completion timestamp. Kept as
//     shipped; see DESIGN.md.
func ApplyProgressUpdate(e *model.ModuleEnrollmentModel, progress *int, completed *bool, now time.Time) error {
	if progress != nil {
		if *progress < 0 || *progress > 100 {
			return fiber.NewError(fiber.StatusBadRequest, "progress must be between 0 and 100")
		}
		e.ModuleEnrollmentProgressPercentage = *progress
	}

	if completed != nil && *completed {
		t := now
		e.ModuleEnrollmentCompletedAt = &t
	} else {
		e.ModuleEnrollmentCompletedAt = nil
	}
	return nil
}

// UpdateProgress loads the enrollment, applies the update and persists both
// columns explicitly so clearing completed_at writes SQL NULL.
func UpdateProgress(db *gorm.DB, userID, moduleID uuid.UUID, progress *int, completed *bool) (model.ModuleEnrollmentModel, error) {
	var enrollment model.ModuleEnrollmentModel
	if err := db.First(&enrollment,
		"module_enrollment_user_id = ? AND module_enrollment_module_id = ?", userID, moduleID,
	).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ModuleEnrollmentModel{}, fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
		}
		return model.ModuleEnrollmentModel{}, err
	}

	if err := ApplyProgressUpdate(&enrollment, progress, completed, time.Now()); err != nil {
		return model.ModuleEnrollmentModel{}, err
	}

	if err := db.Model(&enrollment).
		Select("module_enrollment_progress_percentage", "module_enrollment_completed_at").
		Updates(map[string]interface{}{
			"module_enrollment_progress_percentage": enrollment.ModuleEnrollmentProgressPercentage,
			"module_enrollment_completed_at":        enrollment.ModuleEnrollmentCompletedAt,
		}).Error; err != nil {
		return model.ModuleEnrollmentModel{}, err
	}
	return enrollment, nil
}

// MarkPaymentCompleted flips the enrollment payment status once a gateway
// verification confirms the charge.
func MarkPaymentCompleted(db *gorm.DB, reference string) error {
	res := db.Model(&model.ModuleEnrollmentModel{}).
		Where("module_enrollment_payment_reference = ?", reference).
		Update("module_enrollment_payment_status", model.PaymentStatusCompleted)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No enrollment for payment reference")
	}
	return nil
}
