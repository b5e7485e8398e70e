package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "edulevels_backend/internals/features/users/auth/dto"
	authService "edulevels_backend/internals/features/users/auth/service"
	helper "edulevels_backend/internals/helpers"
)

type AuthController struct {
	Service *authService.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{Service: authService.NewAuthService(db)}
}

var validate = validator.New()

// =============================
// 📝 Register
// =============================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body authDTO.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ctrl.Service.Register(body)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	setAuthCookie(c, resp.AccessToken)
	return helper.JsonCreated(c, "Account created", resp)
}

// =============================
// 🔐 Login
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body authDTO.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ctrl.Service.Login(body)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	setAuthCookie(c, resp.AccessToken)
	return helper.JsonOK(c, "Login successful", resp)
}

// =============================
// 🔐 Google login
// =============================
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var body authDTO.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ctrl.Service.GoogleLogin(body.IDToken)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	setAuthCookie(c, resp.AccessToken)
	return helper.JsonOK(c, "Login successful", resp)
}

// =============================
// 🚪 Logout
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Logged out", nil)
}

func setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
