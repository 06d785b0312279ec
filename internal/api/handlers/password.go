package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/localmart/community-backend/internal/services"
	"github.com/localmart/community-backend/internal/utils"
)

type PasswordHandler struct {
	authService *services.AuthService
}

func NewPasswordHandler(authService *services.AuthService) *PasswordHandler {
	return &PasswordHandler{authService: authService}
}

func (h *PasswordHandler) ForgotPassword(c *gin.Context) {
	var req services.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	if err := h.authService.ForgotPassword(req); err != nil {
		sendServiceError(c, "Failed to process password reset request", err)
		return
	}

	utils.SendSuccess(c, "If the email exists, a reset link has been sent", nil)
}

func (h *PasswordHandler) ResetPassword(c *gin.Context) {
	var req services.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	if err := h.authService.ResetPassword(req); err != nil {
		sendServiceError(c, "Failed to reset password", err)
		return
	}

	utils.SendSuccess(c, "Password reset successfully", nil)
}

func (h *PasswordHandler) ChangePassword(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req services.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	if err := h.authService.ChangePassword(userID, req); err != nil {
		sendServiceError(c, "Failed to change password", err)
		return
	}

	utils.SendSuccess(c, "Password changed successfully", nil)
}
