package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	moduleModel "edulevels_backend/internals/features/lms/modules/model"
	userModel "edulevels_backend/internals/features/users/user/model"
)

const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusFailed    = "FAILED"
)

// ModuleEnrollmentModel relates one learner to one module. The composite
// unique index on (user_id, module_id) is what makes double-enroll an atomic
// one-winner race: the loser gets a duplicated-key error, never a second row.
type ModuleEnrollmentModel struct {
	ModuleEnrollmentID                 uuid.UUID      `gorm:"column:module_enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"module_enrollment_id"`
	ModuleEnrollmentUserID             uuid.UUID      `gorm:"column:module_enrollment_user_id;type:uuid;not null;uniqueIndex:idx_enrollment_user_module" json:"module_enrollment_user_id"`
	ModuleEnrollmentModuleID           uuid.UUID      `gorm:"column:module_enrollment_module_id;type:uuid;not null;uniqueIndex:idx_enrollment_user_module" json:"module_enrollment_module_id"`
	ModuleEnrollmentProgressPercentage int            `gorm:"column:module_enrollment_progress_percentage;not null;default:0" json:"module_enrollment_progress_percentage"`
	ModuleEnrollmentCompletedAt        *time.Time     `gorm:"column:module_enrollment_completed_at" json:"module_enrollment_completed_at"`
	ModuleEnrollmentPaymentStatus      string         `gorm:"column:module_enrollment_payment_status;type:varchar(20);not null;default:'PENDING'" json:"module_enrollment_payment_status"`
	ModuleEnrollmentPaymentReference   *string        `gorm:"column:module_enrollment_payment_reference;size:100;index" json:"module_enrollment_payment_reference"`
	ModuleEnrollmentCompletedSubTopics datatypes.JSON `gorm:"column:module_enrollment_completed_subtopics;type:jsonb" json:"module_enrollment_completed_subtopics"`
	ModuleEnrollmentCreatedAt          time.Time      `gorm:"column:module_enrollment_created_at;autoCreateTime" json:"module_enrollment_created_at"`
	ModuleEnrollmentUpdatedAt          time.Time      `gorm:"column:module_enrollment_updated_at;autoUpdateTime" json:"module_enrollment_updated_at"`

	User   *userModel.UserModel     `gorm:"foreignKey:ModuleEnrollmentUserID;references:ID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Module *moduleModel.ModuleModel `gorm:"foreignKey:ModuleEnrollmentModuleID;references:ModuleID;constraint:OnDelete:CASCADE" json:"module,omitempty"`
}

func (ModuleEnrollmentModel) TableName() string {
	return "module_enrollments"
}
