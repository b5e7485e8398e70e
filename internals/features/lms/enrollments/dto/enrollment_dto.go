package dto

import (
	"time"

	"edulevels_backend/internals/features/lms/enrollments/model"
)

// ============================
// Request DTOs
// ============================

// UpdateEnrollmentRequest tracks field presence independently of value:
// a nil Progress means "not supplied", distinct from a supplied zero.
// Completed behaves as the stored contract requires: true stamps
// completed_at, false or absent clears it on every call.
type UpdateEnrollmentRequest struct {
	Progress  *int  `json:"progress" validate:"omitempty"`
	Completed *bool `json:"completed"`
}

// ============================
// Response DTO
// ============================

type ModuleEnrollmentDTO struct {
	ModuleEnrollmentID                 string     `json:"module_enrollment_id"`
	ModuleEnrollmentUserID             string     `json:"module_enrollment_user_id"`
	ModuleEnrollmentModuleID           string     `json:"module_enrollment_module_id"`
	ModuleEnrollmentProgressPercentage int        `json:"module_enrollment_progress_percentage"`
	ModuleEnrollmentCompletedAt        *time.Time `json:"module_enrollment_completed_at"`
	ModuleEnrollmentPaymentStatus      string     `json:"module_enrollment_payment_status"`
	ModuleEnrollmentCreatedAt          time.Time  `json:"module_enrollment_created_at"`
}

// ============================
// Converter
// ============================

func ToModuleEnrollmentDTO(m model.ModuleEnrollmentModel) ModuleEnrollmentDTO {
	return ModuleEnrollmentDTO{
		ModuleEnrollmentID:                 m.ModuleEnrollmentID.String(),
		ModuleEnrollmentUserID:             m.ModuleEnrollmentUserID.String(),
		ModuleEnrollmentModuleID:           m.ModuleEnrollmentModuleID.String(),
		ModuleEnrollmentProgressPercentage: m.ModuleEnrollmentProgressPercentage,
		ModuleEnrollmentCompletedAt:        m.ModuleEnrollmentCompletedAt,
		ModuleEnrollmentPaymentStatus:      m.ModuleEnrollmentPaymentStatus,
		ModuleEnrollmentCreatedAt:          m.ModuleEnrollmentCreatedAt,
	}
}
