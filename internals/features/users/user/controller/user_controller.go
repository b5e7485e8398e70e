package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "edulevels_backend/internals/features/users/user/model"
	helper "edulevels_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// =============================
// 👤 Current user + profile
// =============================
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var profile userModel.UserProfileModel
	if err := ctrl.DB.First(&profile, "user_profile_user_id = ?", userID).Error; err != nil {
		return helper.JsonOK(c, "ok", fiber.Map{"user": user, "profile": nil})
	}
	return helper.JsonOK(c, "ok", fiber.Map{"user": user, "profile": profile})
}

// =============================
// 📄 List users (admin)
// =============================
func (ctrl *UserController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []userModel.UserModel
	if err := ctrl.DB.
		Order("created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}
	return helper.JsonList(c, "ok", users, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// ✏️ Update certificate gate (admin)
// =============================
// Marks the final test completed and schedules when the certificate becomes
// issuable. The issuer endpoint only ever reads these fields.
func (ctrl *UserController) UpdateProfileGate(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var body struct {
		TestCompleted          *bool      `json:"test_completed"`
		CertificateAvailableAt *time.Time `json:"certificate_available_at"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if body.TestCompleted != nil {
		updates["user_profile_test_completed"] = *body.TestCompleted
	}
	if body.CertificateAvailableAt != nil {
		updates["user_profile_certificate_available_at"] = *body.CertificateAvailableAt
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields supplied")
	}

	res := ctrl.DB.Model(&userModel.UserProfileModel{}).
		Where("user_profile_user_id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User profile not found")
	}

	var profile userModel.UserProfileModel
	if err := ctrl.DB.First(&profile, "user_profile_user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload profile")
	}
	return helper.JsonUpdated(c, "Profile updated", profile)
}

// =============================
// 🔍 User detail (admin)
// =============================
func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "ok", user)
}
