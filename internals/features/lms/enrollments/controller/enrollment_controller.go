package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edulevels_backend/internals/features/lms/enrollments/dto"
	"edulevels_backend/internals/features/lms/enrollments/model"
	"edulevels_backend/internals/features/lms/enrollments/service"
	helper "edulevels_backend/internals/helpers"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

// =============================
// ➕ Enroll in a module
// POST /modules/:id/enroll
// =============================
func (ctrl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	moduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid module id")
	}

	enrollment, err := service.Enroll(ctrl.DB, userID, moduleID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Enrolled", dto.ToModuleEnrollmentDTO(enrollment))
}

// =============================
// ✏️ Update progress
// PATCH /modules/:id/enroll
// =============================
func (ctrl *EnrollmentController) UpdateProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	moduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid module id")
	}

	var body dto.UpdateEnrollmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	enrollment, err := service.UpdateProgress(ctrl.DB, userID, moduleID, body.Progress, body.Completed)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Enrollment updated", dto.ToModuleEnrollmentDTO(enrollment))
}

// =============================
// 🔍 My enrollment for a module
// =============================
func (ctrl *EnrollmentController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	moduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid module id")
	}

	var enrollment model.ModuleEnrollmentModel
	if err := ctrl.DB.First(&enrollment,
		"module_enrollment_user_id = ? AND module_enrollment_module_id = ?", userID, moduleID,
	).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
	}
	return helper.JsonOK(c, "ok", dto.ToModuleEnrollmentDTO(enrollment))
}

// =============================
// 📄 All my enrollments
// =============================
func (ctrl *EnrollmentController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var enrollments []model.ModuleEnrollmentModel
	if err := ctrl.DB.
		Preload("Module").
		Where("module_enrollment_user_id = ?", userID).
		Order("module_enrollment_created_at DESC").
		Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	result := make([]dto.ModuleEnrollmentDTO, 0, len(enrollments))
	for _, e := range enrollments {
		result = append(result, dto.ToModuleEnrollmentDTO(e))
	}
	return helper.JsonOK(c, "ok", result)
}
