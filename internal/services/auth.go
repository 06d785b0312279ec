package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/localmart/community-backend/internal/models"
	"github.com/localmart/community-backend/internal/utils"
	"gorm.io/gorm"
)

type AuthService struct {
	db           *gorm.DB
	jwtSecret    string
	emailService *EmailService
	baseURL      string
}

func NewAuthService(db *gorm.DB, jwtSecret string, emailService *EmailService, baseURL string) *AuthService {
	return &AuthService{
		db:           db,
		jwtSecret:    jwtSecret,
		emailService: emailService,
		baseURL:      baseURL,
	}
}

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	AboutMe  string `json:"about_me"`
}

type LoginRequest struct {
	// Login accepts either a username or an email address.
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	AboutMe  string `json:"about_me"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type AuthResponse struct {
	Token utils.TokenPair `json:"token"`
	User  models.User     `json:"user"`
}

func (s *AuthService) Signup(req SignupRequest) (*AuthResponse, error) {
	if !utils.IsValidEmail(req.Email) {
		return nil, validationError("invalid email format")
	}
	if !utils.IsValidPassword(req.Password) {
		return nil, validationError("password must be at least 8 characters")
	}

	var existing models.User
	if err := s.db.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).Error; err == nil {
		return nil, validationError("username or email already taken")
	}

	user := models.User{
		Username:           utils.SanitizeString(req.Username),
		Email:              utils.SanitizeString(req.Email),
		Password:           req.Password, // hashed in BeforeCreate hook
		AboutMe:            utils.SanitizeString(req.AboutMe),
		SubscriptionStatus: models.SubscriptionFree,
	}

	// The user row, role grant and refresh token land together or not at all.
	var resp *AuthResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		// Every new account starts with the base role.
		var userRole models.Role
		if err := tx.Where("name = ?", "user").First(&userRole).Error; err == nil {
			if err := tx.Model(&user).Association("Roles").Append(&userRole); err != nil {
				return err
			}
		}

		issued, err := s.issueTokens(tx, &user)
		if err != nil {
			return err
		}
		resp = issued
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *AuthService) Login(req LoginRequest) (*AuthResponse, error) {
	var user models.User
	if err := s.db.Preload("Roles").
		Where("username = ? OR email = ?", req.Login, req.Login).
		First(&user).Error; err != nil {
		return nil, errors.New("invalid credentials")
	}

	if !user.CheckPassword(req.Password) {
		return nil, errors.New("invalid credentials")
	}

	// Revoke outstanding refresh tokens before issuing a new pair.
	s.db.Model(&models.RefreshToken{}).Where("user_id = ?", user.ID).Update("is_revoked", true)

	return s.issueTokens(s.db, &user)
}

func (s *AuthService) issueTokens(db *gorm.DB, user *models.User) (*AuthResponse, error) {
	tokenPair, err := utils.GenerateTokenPair(user.ID, user.Username, s.jwtSecret)
	if err != nil {
		return nil, errors.New("failed to generate tokens")
	}

	refreshToken := models.RefreshToken{
		UserID:    user.ID,
		Token:     tokenPair.RefreshToken,
		ExpiresAt: time.Unix(tokenPair.RefreshTokenExpiresAt, 0),
	}
	if err := db.Create(&refreshToken).Error; err != nil {
		return nil, errors.New("failed to store refresh token")
	}

	return &AuthResponse{Token: *tokenPair, User: *user}, nil
}

func (s *AuthService) RefreshToken(req RefreshRequest) (*AuthResponse, error) {
	claims, err := utils.ValidateToken(req.RefreshToken, s.jwtSecret)
	if err != nil {
		return nil, errors.New("invalid refresh token")
	}
	if claims.Type != string(utils.RefreshToken) {
		return nil, errors.New("invalid token type")
	}

	var stored models.RefreshToken
	if err := s.db.Where("token = ? AND is_revoked = ? AND expires_at > ?", req.RefreshToken, false, time.Now()).
		First(&stored).Error; err != nil {
		return nil, errors.New("refresh token not found or expired")
	}

	var user models.User
	if err := s.db.Preload("Roles").First(&user, stored.UserID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	tx := s.db.Begin()
	stored.IsRevoked = true
	if err := tx.Save(&stored).Error; err != nil {
		tx.Rollback()
		return nil, errors.New("failed to revoke old token")
	}

	tokenPair, err := utils.GenerateTokenPair(user.ID, user.Username, s.jwtSecret)
	if err != nil {
		tx.Rollback()
		return nil, errors.New("failed to generate new tokens")
	}

	newRefresh := models.RefreshToken{
		UserID:    user.ID,
		Token:     tokenPair.RefreshToken,
		ExpiresAt: time.Unix(tokenPair.RefreshTokenExpiresAt, 0),
	}
	if err := tx.Create(&newRefresh).Error; err != nil {
		tx.Rollback()
		return nil, errors.New("failed to store new refresh token")
	}
	tx.Commit()

	return &AuthResponse{Token: *tokenPair, User: user}, nil
}

func (s *AuthService) Logout(refreshToken string) error {
	return s.db.Model(&models.RefreshToken{}).
		Where("token = ?", refreshToken).
		Update("is_revoked", true).Error
}

func (s *AuthService) GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Roles").First(&user, userID).Error; err != nil {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *AuthService) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Roles").Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrNotFound
	}
	return &user, nil
}

// HasRole is the capability check: true iff the user holds a role with the
// exact given name. A user with no roles has no elevated capability.
func (s *AuthService) HasRole(userID uint, roleName string) bool {
	var count int64
	s.db.Table("user_roles").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("user_roles.user_id = ? AND roles.name = ?", userID, roleName).
		Count(&count)
	return count > 0
}

func (s *AuthService) UpdateProfile(userID uint, req UpdateProfileRequest) (*models.User, error) {
	if !utils.IsValidEmail(req.Email) {
		return nil, validationError("invalid email format")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, ErrNotFound
	}

	var conflict models.User
	if err := s.db.Where("(username = ? OR email = ?) AND id <> ?", req.Username, req.Email, userID).
		First(&conflict).Error; err == nil {
		return nil, validationError("username or email already taken")
	}

	user.Username = utils.SanitizeString(req.Username)
	user.Email = utils.SanitizeString(req.Email)
	user.AboutMe = utils.SanitizeString(req.AboutMe)

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) ForgotPassword(req ForgotPasswordRequest) error {
	if !utils.IsValidEmail(req.Email) {
		return validationError("invalid email format")
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil // Don't reveal whether the email exists
	}

	resetToken := uuid.New().String()

	s.db.Model(&models.PasswordResetToken{}).
		Where("user_id = ? AND is_used = ?", user.ID, false).
		Update("is_used", true)

	token := models.PasswordResetToken{
		UserID:    user.ID,
		Token:     resetToken,
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	if err := s.db.Create(&token).Error; err != nil {
		return errors.New("failed to create reset token")
	}

	if s.emailService != nil {
		return s.emailService.SendPasswordResetEmail(user.Email, resetToken, s.baseURL)
	}
	return nil
}

func (s *AuthService) ResetPassword(req ResetPasswordRequest) error {
	if !utils.IsValidPassword(req.NewPassword) {
		return validationError("password must be at least 8 characters")
	}

	var resetToken models.PasswordResetToken
	if err := s.db.Where("token = ? AND is_used = ? AND expires_at > ?",
		req.Token, false, time.Now()).First(&resetToken).Error; err != nil {
		return validationError("invalid or expired reset token")
	}

	var user models.User
	if err := s.db.First(&user, resetToken.UserID).Error; err != nil {
		return ErrNotFound
	}

	if err := user.UpdatePassword(req.NewPassword); err != nil {
		return err
	}
	if err := s.db.Save(&user).Error; err != nil {
		return err
	}

	resetToken.IsUsed = true
	s.db.Save(&resetToken)

	s.db.Model(&models.RefreshToken{}).
		Where("user_id = ?", user.ID).
		Update("is_revoked", true)

	return nil
}

func (s *AuthService) ChangePassword(userID uint, req ChangePasswordRequest) error {
	if !utils.IsValidPassword(req.NewPassword) {
		return validationError("password must be at least 8 characters")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return ErrNotFound
	}

	if !user.CheckPassword(req.CurrentPassword) {
		return validationError("current password is incorrect")
	}

	if err := user.UpdatePassword(req.NewPassword); err != nil {
		return err
	}
	return s.db.Save(&user).Error
}
