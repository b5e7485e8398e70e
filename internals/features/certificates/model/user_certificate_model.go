package model

import (
	"time"

	"github.com/google/uuid"

	userModel "edulevels_backend/internals/features/users/user/model"
)

// UserCertificateModel keeps an audit row for every issued certificate,
// next to the boolean gate on the profile.
type UserCertificateModel struct {
	UserCertificateID       uuid.UUID `gorm:"column:user_certificate_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_certificate_id"`
	UserCertificateUserID   uuid.UUID `gorm:"column:user_certificate_user_id;type:uuid;not null;index" json:"user_certificate_user_id"`
	UserCertificateNumber   string    `gorm:"column:user_certificate_number;size:50;unique;not null" json:"user_certificate_number"`
	UserCertificateURL      string    `gorm:"column:user_certificate_url;size:512;not null" json:"user_certificate_url"`
	UserCertificateIssuedAt time.Time `gorm:"column:user_certificate_issued_at;not null" json:"user_certificate_issued_at"`

	User *userModel.UserModel `gorm:"foreignKey:UserCertificateUserID;references:ID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (UserCertificateModel) TableName() string {
	return "user_certificates"
}
