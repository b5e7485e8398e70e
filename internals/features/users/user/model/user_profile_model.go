package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfileModel is 1:1 with users and carries the certificate gate state.
// certificate_available_at is set when the final test is completed; issuance
// before that moment must be refused.
type UserProfileModel struct {
	UserProfileID                     uuid.UUID  `gorm:"column:user_profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_profile_id"`
	UserProfileUserID                 uuid.UUID  `gorm:"column:user_profile_user_id;type:uuid;not null;unique" json:"user_profile_user_id"`
	UserProfileFullName               string     `gorm:"column:user_profile_full_name;size:100" json:"user_profile_full_name"`
	UserProfileTestCompleted          bool       `gorm:"column:user_profile_test_completed;not null;default:false" json:"user_profile_test_completed"`
	UserProfileCertificateIssued      bool       `gorm:"column:user_profile_certificate_issued;not null;default:false" json:"user_profile_certificate_issued"`
	UserProfileCertificateAvailableAt *time.Time `gorm:"column:user_profile_certificate_available_at" json:"user_profile_certificate_available_at"`
	UserProfileCertificateURL         *string    `gorm:"column:user_profile_certificate_url;size:512" json:"user_profile_certificate_url"`
	UserProfileCreatedAt              time.Time  `gorm:"column:user_profile_created_at;autoCreateTime" json:"user_profile_created_at"`
	UserProfileUpdatedAt              time.Time  `gorm:"column:user_profile_updated_at;autoUpdateTime" json:"user_profile_updated_at"`

	User *UserModel `gorm:"foreignKey:UserProfileUserID;references:ID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (UserProfileModel) TableName() string {
	return "user_profiles"
}
