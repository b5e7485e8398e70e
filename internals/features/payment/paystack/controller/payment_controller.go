package controller

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edulevels_backend/internals/configs"
	enrollmentModel "edulevels_backend/internals/features/lms/enrollments/model"
	enrollmentService "edulevels_backend/internals/features/lms/enrollments/service"
	moduleModel "edulevels_backend/internals/features/lms/modules/model"
	"edulevels_backend/internals/features/payment/paystack/dto"
	paystackService "edulevels_backend/internals/features/payment/paystack/service"
	userModel "edulevels_backend/internals/features/users/user/model"
	helper "edulevels_backend/internals/helpers"
)

type PaymentController struct {
	DB     *gorm.DB
	Client *paystackService.Client
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db, Client: paystackService.NewClient()}
}

var validate = validator.New()

// =============================
// 💳 Initialize a module payment
// =============================
// The learner must already hold a pending enrollment; the charge reference is
// pinned to it so verification can find its way back.
func (ctrl *PaymentController) Initialize(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.InitializePaymentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	moduleID, err := uuid.Parse(body.ModuleID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid module_id")
	}

	var mod moduleModel.ModuleModel
	if err := ctrl.DB.First(&mod, "module_id = ?", moduleID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Module not found")
	}
	if mod.ModulePrice <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Module does not require payment")
	}

	var enrollment enrollmentModel.ModuleEnrollmentModel
	if err := ctrl.DB.First(&enrollment,
		"module_enrollment_user_id = ? AND module_enrollment_module_id = ?", userID, moduleID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not enrolled in this module")
	}
	if enrollment.ModuleEnrollmentPaymentStatus == enrollmentModel.PaymentStatusCompleted {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payment already completed")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	reference := fmt.Sprintf("enr-%s-%s", enrollment.ModuleEnrollmentID, uuid.NewString()[:8])
	data, err := ctrl.Client.InitializeTransaction(dto.InitializeTransactionRequest{
		Email:       user.Email,
		Amount:      mod.ModulePrice,
		Reference:   reference,
		CallbackURL: body.CallbackURL,
	})
	if err != nil {
		return gatewayError(c, err)
	}

	if err := ctrl.DB.Model(&enrollment).
		Update("module_enrollment_payment_reference", data.Reference).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store payment reference")
	}

	return helper.JsonOK(c, "Payment initialized", data)
}

// =============================
// ✅ Verify a charge by reference
// =============================
func (ctrl *PaymentController) Verify(c *fiber.Ctx) error {
	reference := c.Params("reference")
	if reference == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "reference is required")
	}

	data, err := ctrl.Client.VerifyTransaction(reference)
	if err != nil {
		return gatewayError(c, err)
	}

	if data.Status == "success" {
		if err := enrollmentService.MarkPaymentCompleted(ctrl.DB, data.Reference); err != nil {
			return helper.FromFiberError(c, err)
		}
	}
	return helper.JsonOK(c, "Payment verified", data)
}

// =============================
// 🪝 Gateway webhook
// =============================
// Signature is HMAC-SHA512 of the raw body with the secret key; anything that
// fails the check is dropped with 401.
func (ctrl *PaymentController) Webhook(c *fiber.Ctx) error {
	signature := c.Get("x-paystack-signature")
	if !verifySignature(c.Body(), signature, configs.PaystackSecretKey) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid webhook signature")
	}

	var event dto.WebhookEvent
	if err := c.BodyParser(&event); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid webhook payload")
	}

	if event.Event == "charge.success" && event.Data.Reference != "" {
		if err := enrollmentService.MarkPaymentCompleted(ctrl.DB, event.Data.Reference); err != nil {
			// unknown reference: acknowledge anyway so the gateway stops retrying
			var fe *fiber.Error
			if !errors.As(err, &fe) || fe.Code != fiber.StatusNotFound {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to apply webhook")
			}
		}
	}
	return helper.JsonOK(c, "ok", nil)
}

func verifySignature(body []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func gatewayError(c *fiber.Ctx, err error) error {
	var ge *paystackService.GatewayError
	if errors.As(err, &ge) {
		return helper.JsonError(c, ge.StatusCode, ge.Message)
	}
	return helper.JsonError(c, fiber.StatusBadGateway, "Payment gateway error")
}
