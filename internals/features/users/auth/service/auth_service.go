package service

import (
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"edulevels_backend/internals/configs"
	authDTO "edulevels_backend/internals/features/users/auth/dto"
	userModel "edulevels_backend/internals/features/users/user/model"
)

const accessTTL = 24 * time.Hour

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// =======================
// 📝 REGISTER
// =======================
func (s *AuthService) Register(req authDTO.RegisterRequest) (*authDTO.LoginResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName: req.UserName,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashed),
	}
	user.SetDefaultValues()

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := userModel.UserProfileModel{
			UserProfileUserID:   user.ID,
			UserProfileFullName: req.FullName,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusConflict, "Email already registered")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create account")
	}

	return s.loginResponse(&user)
}

// =======================
// 🔐 LOGIN
// =======================
func (s *AuthService) Login(req authDTO.LoginRequest) (*authDTO.LoginResponse, error) {
	var user userModel.UserModel
	if err := s.DB.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	return s.loginResponse(&user)
}

// =======================
// 🔐 GOOGLE LOGIN
// =======================
// Verifies the Google ID token, then finds-or-creates the account.
func (s *AuthService) GoogleLogin(idToken string) (*authDTO.LoginResponse, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google ID token")
	}

	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Failed to decode Google ID token")
	}

	var user userModel.UserModel
	err = s.DB.First(&user, "google_id = ?", claims.Sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// fall back to email match, then create
		err = s.DB.First(&user, "email = ?", strings.ToLower(claims.Email)).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			googleID := claims.Sub
			user = userModel.UserModel{
				UserName: claims.Name,
				Email:    strings.ToLower(claims.Email),
				Password: "-",
				GoogleID: &googleID,
			}
			user.SetDefaultValues()
			if createErr := s.DB.Create(&user).Error; createErr != nil {
				return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create account")
			}
			profile := userModel.UserProfileModel{
				UserProfileUserID:   user.ID,
				UserProfileFullName: claims.Name,
			}
			_ = s.DB.Create(&profile).Error
		} else if err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to look up account")
		} else {
			// link the Google identity to the existing account
			googleID := claims.Sub
			user.GoogleID = &googleID
			_ = s.DB.Model(&user).Update("google_id", googleID).Error
		}
	} else if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to look up account")
	}

	if !user.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
	}

	return s.loginResponse(&user)
}

// =======================
// 🎫 TOKEN
// =======================
func (s *AuthService) loginResponse(user *userModel.UserModel) (*authDTO.LoginResponse, error) {
	token, err := issueAccessToken(user)
	if err != nil {
		return nil, err
	}
	return &authDTO.LoginResponse{
		AccessToken: token,
		User: authDTO.AuthUserDTO{
			ID:       user.ID.String(),
			UserName: user.UserName,
			Email:    user.Email,
			Role:     user.Role,
		},
	}, nil
}

func issueAccessToken(user *userModel.UserModel) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT secret is not configured")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":       user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}
	return signed, nil
}
