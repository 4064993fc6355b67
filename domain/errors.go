package domain

import "errors"

// Account errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is not active")
	ErrAccountBlocked     = errors.New("account is blocked")
	ErrAccountDeleted     = errors.New("account not found")
	ErrAlreadyVerified    = errors.New("email is already verified")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
)

// OTP errors
var (
	ErrOTPInvalid = errors.New("invalid otp code")
	ErrOTPExpired = errors.New("otp has expired")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenMissing   = errors.New("no token provided")
)

// Notification errors
var (
	ErrEmailSendFailed = errors.New("failed to send email")
)

// Job errors
var (
	ErrJobNotFound  = errors.New("job not found")
	ErrSlugTaken    = errors.New("job slug already exists")
	ErrRoleNotFound = errors.New("role not found")
)
