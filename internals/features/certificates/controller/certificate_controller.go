package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	certModel "edulevels_backend/internals/features/certificates/model"
	certService "edulevels_backend/internals/features/certificates/service"
	helper "edulevels_backend/internals/helpers"
)

type CertificateController struct {
	DB *gorm.DB
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{DB: db}
}

// =============================
// 🎓 Issue a certificate (admin)
// =============================
func (ctrl *CertificateController) Issue(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	cert, err := certService.IssueCertificate(ctrl.DB, userID)
	if err != nil {
		var notYet *certService.ErrNotYetAvailable
		if errors.As(err, &notYet) {
			return helper.JsonErrorWithData(c, fiber.StatusBadRequest, "Certificate is not yet available",
				fiber.Map{"available_at": notYet.AvailableAt})
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Certificate issued", cert)
}

// =============================
// 📄 Certificates of a user (admin)
// =============================
func (ctrl *CertificateController) ListByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var certs []certModel.UserCertificateModel
	if err := ctrl.DB.
		Where("user_certificate_user_id = ?", userID).
		Order("user_certificate_issued_at DESC").
		Find(&certs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch certificates")
	}
	return helper.JsonOK(c, "ok", certs)
}
