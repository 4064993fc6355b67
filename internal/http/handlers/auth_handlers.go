package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AbidMulla/off-compus-backend/domain"
	"github.com/AbidMulla/off-compus-backend/internal/http/response"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	MobileNo string `json:"mobile_no"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// OTPVerifyRequest represents an email + code verification request
type OTPVerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// EmailRequest carries the flows that only need an email address
type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents the final password reset step
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

func userPayload(user *domain.User) gin.H {
	return gin.H{
		"id":                user.ID,
		"name":              user.Name,
		"email":             user.Email,
		"mobile_no":         user.MobileNo,
		"is_email_verified": user.IsEmailVerified,
		"is_active":         user.IsActive,
	}
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req.Name, req.Email, req.MobileNo, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			response.Error(c, http.StatusConflict, "User already exists with this email")
		case errors.Is(err, domain.ErrPasswordTooShort):
			response.Error(c, http.StatusBadRequest, "Password must be at least 6 characters long")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal server error during registration")
		}
		return
	}

	response.Created(c, "User registered successfully. Please verify your email with the OTP sent.", gin.H{
		"user": userPayload(user),
	})
}

// RegisterOTP verifies the registration code and signs the user in
func (h *AuthHandlers) RegisterOTP(c *gin.Context) {
	var req OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and OTP are required")
		return
	}

	result, err := h.authSvc.VerifyRegistrationOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		h.writeOTPError(c, err, "Internal server error during OTP verification")
		return
	}

	response.OK(c, "Email verified successfully. Account activated.", gin.H{
		"token": result.Token,
		"user":  userPayload(result.User),
	})
}

// ActivateAccountOTP verifies the activation code without starting a session
func (h *AuthHandlers) ActivateAccountOTP(c *gin.Context) {
	var req OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and OTP are required")
		return
	}

	user, err := h.authSvc.VerifyActivationOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		h.writeOTPError(c, err, "Internal server error during OTP verification")
		return
	}

	response.OK(c, "Account activated successfully. You can now login.", gin.H{
		"user": userPayload(user),
	})
}

// ActivateAccount reissues an activation code
func (h *AuthHandlers) ActivateAccount(c *gin.Context) {
	h.resend(c, domain.OTPPurposeActivation, "New OTP sent to your email for account activation")
}

// RegisterResendOTP reissues a registration code
func (h *AuthHandlers) RegisterResendOTP(c *gin.Context) {
	h.resend(c, domain.OTPPurposeRegistration, "New OTP sent to your email for account activation")
}

// ActivateAccountResendOTP reissues an activation code
func (h *AuthHandlers) ActivateAccountResendOTP(c *gin.Context) {
	h.resend(c, domain.OTPPurposeActivation, "New OTP sent to your email for account activation")
}

// ForgotPasswordResendOTP reissues a password reset code
func (h *AuthHandlers) ForgotPasswordResendOTP(c *gin.Context) {
	h.resend(c, domain.OTPPurposeForgotPassword, "New OTP sent to your email for password reset")
}

func (h *AuthHandlers) resend(c *gin.Context, purpose domain.OTPPurpose, successMsg string) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email is required")
		return
	}

	if err := h.authSvc.ResendOTP(c.Request.Context(), req.Email, purpose); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrAlreadyVerified):
			response.Error(c, http.StatusBadRequest, "Email is already verified")
		case errors.Is(err, domain.ErrAccountInactive):
			response.Error(c, http.StatusBadRequest, "Account is not active. Please verify your email first.")
		case errors.Is(err, domain.ErrEmailSendFailed):
			response.Error(c, http.StatusInternalServerError, "Failed to send OTP email")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal server error during OTP resend")
		}
		return
	}

	response.OK(c, successMsg, nil)
}

// Login authenticates credentials
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, domain.ErrAccountInactive):
			response.Error(c, http.StatusUnauthorized, "Account is not active. Please verify your email first.")
		case errors.Is(err, domain.ErrAccountBlocked):
			response.Error(c, http.StatusUnauthorized, "Account is blocked. Please contact support.")
		case errors.Is(err, domain.ErrAccountDeleted):
			response.Error(c, http.StatusUnauthorized, "Account not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal server error during login")
		}
		return
	}

	response.OK(c, "Login successful", gin.H{
		"token": result.Token,
		"user":  userPayload(result.User),
	})
}

// Logout revokes the presented bearer token. A request without a token
// still succeeds: there is no session left either way.
func (h *AuthHandlers) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
		if err := h.authSvc.Logout(c.Request.Context(), parts[1]); err != nil {
			response.Error(c, http.StatusInternalServerError, "Internal server error during logout")
			return
		}
	}
	response.OK(c, "Logged out successfully", nil)
}

// ForgotPassword issues a password reset code
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email is required")
		return
	}

	if err := h.authSvc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found with this email")
		case errors.Is(err, domain.ErrAccountInactive):
			response.Error(c, http.StatusBadRequest, "Account is not active. Please verify your email first.")
		case errors.Is(err, domain.ErrEmailSendFailed):
			response.Error(c, http.StatusInternalServerError, "Failed to send OTP email")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal server error during forgot password")
		}
		return
	}

	response.OK(c, "OTP sent to your email for password reset", nil)
}

// ForgotPasswordOTP checks a reset code without consuming it
func (h *AuthHandlers) ForgotPasswordOTP(c *gin.Context) {
	var req OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and OTP are required")
		return
	}

	if err := h.authSvc.VerifyPasswordResetOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		h.writeOTPError(c, err, "Internal server error during OTP verification")
		return
	}

	response.OK(c, "OTP verified successfully. You can now reset your password.", nil)
}

// ResetPassword sets a new password after code verification
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email, OTP, and new password are required")
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordTooShort):
			response.Error(c, http.StatusBadRequest, "Password must be at least 6 characters long")
		default:
			h.writeOTPError(c, err, "Internal server error during password reset")
		}
		return
	}

	response.OK(c, "Password reset successfully. Please login with your new password.", nil)
}

func (h *AuthHandlers) writeOTPError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrAlreadyVerified):
		response.Error(c, http.StatusBadRequest, "Email is already verified")
	case errors.Is(err, domain.ErrOTPInvalid):
		response.Error(c, http.StatusBadRequest, "Invalid OTP")
	case errors.Is(err, domain.ErrOTPExpired):
		response.Error(c, http.StatusBadRequest, "OTP has expired. Please request a new one.")
	default:
		response.Error(c, http.StatusInternalServerError, fallback)
	}
}
