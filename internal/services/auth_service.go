package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/AbidMulla/off-compus-backend/domain"
)

// AuthServiceImpl implements domain.AuthService. It owns the full
// account lifecycle: registration, OTP verification, login, logout and
// password reset.
type AuthServiceImpl struct {
	users    domain.UserRepository
	roles    domain.RoleRepository
	tokens   domain.TokenRepository
	password domain.PasswordService
	tokenSvc domain.TokenService
	otp      domain.OTPService
	mailer   domain.Mailer
	log      *zap.Logger
	tokenTTL time.Duration
}

// NewAuthService creates a new authentication service
func NewAuthService(
	users domain.UserRepository,
	roles domain.RoleRepository,
	tokens domain.TokenRepository,
	password domain.PasswordService,
	tokenSvc domain.TokenService,
	otp domain.OTPService,
	mailer domain.Mailer,
	log *zap.Logger,
	tokenTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		users:    users,
		roles:    roles,
		tokens:   tokens,
		password: password,
		tokenSvc: tokenSvc,
		otp:      otp,
		mailer:   mailer,
		log:      log,
		tokenTTL: tokenTTL,
	}
}

// Register creates an unverified account, assigns the default role and
// emails a verification code. A failure to deliver the email does not
// fail registration; the user can request a resend.
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, mobileNo, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if len(password) < 6 {
		return nil, domain.ErrPasswordTooShort
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := s.password.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := s.otp.Issue()
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		MobileNo:     mobileNo,
		OTPCode:      code.Code,
		OTPExpireAt:  &code.ExpiresAt,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if role, err := s.roles.FindByName(ctx, "user"); err == nil {
		if err := s.roles.Assign(ctx, user.ID, role.ID); err != nil {
			s.log.Error("failed to assign default role", zap.Uint("user_id", user.ID), zap.Error(err))
		}
	} else {
		s.log.Error("default role missing", zap.Error(err))
	}

	if err := s.mailer.SendRegisterOTP(user.Email, code.Code); err != nil {
		s.log.Error("failed to send registration OTP email", zap.String("email", user.Email), zap.Error(err))
	}

	s.logEvent(domain.NewAuditEvent(domain.UserRegistrationEvent, user.ID).WithEmail(user.Email))
	return user, nil
}

// VerifyRegistrationOTP confirms a new account's email and signs the
// user in. Check order matters: verified status is reported before a
// wrong code, and a wrong code before expiry.
func (s *AuthServiceImpl) VerifyRegistrationOTP(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	user, err := s.verifyOTP(ctx, email, code, true)
	if err != nil {
		return nil, err
	}

	user.IsEmailVerified = true
	user.IsActive = true
	user.OTPCode = ""
	user.OTPExpireAt = nil
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if err := s.mailer.SendWelcome(user.Email, user.Name); err != nil {
		s.log.Error("failed to send welcome email", zap.String("email", user.Email), zap.Error(err))
	}

	s.logEvent(domain.NewAuditEvent(domain.EmailVerifiedEvent, user.ID).WithEmail(user.Email))
	return s.issueToken(ctx, user)
}

// VerifyActivationOTP confirms an email without starting a session.
func (s *AuthServiceImpl) VerifyActivationOTP(ctx context.Context, email, code string) (*domain.User, error) {
	user, err := s.verifyOTP(ctx, email, code, true)
	if err != nil {
		return nil, err
	}

	user.IsEmailVerified = true
	user.IsActive = true
	user.OTPCode = ""
	user.OTPExpireAt = nil
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if err := s.mailer.SendWelcome(user.Email, user.Name); err != nil {
		s.log.Error("failed to send welcome email", zap.String("email", user.Email), zap.Error(err))
	}

	s.logEvent(domain.NewAuditEvent(domain.EmailVerifiedEvent, user.ID).WithEmail(user.Email))
	return user, nil
}

// ResendOTP reissues a code for the given purpose, overwriting any
// previous one. Unlike initial registration, a delivery failure here is
// fatal because a resend exists only to deliver the email.
func (s *AuthServiceImpl) ResendOTP(ctx context.Context, email string, purpose domain.OTPPurpose) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	switch purpose {
	case domain.OTPPurposeRegistration, domain.OTPPurposeActivation:
		if user.IsEmailVerified {
			return domain.ErrAlreadyVerified
		}
	case domain.OTPPurposeForgotPassword:
		if !user.IsActive {
			return domain.ErrAccountInactive
		}
	}

	code, err := s.otp.Issue()
	if err != nil {
		return err
	}
	user.OTPCode = code.Code
	user.OTPExpireAt = &code.ExpiresAt
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	var sendErr error
	switch purpose {
	case domain.OTPPurposeRegistration:
		sendErr = s.mailer.SendRegisterResendOTP(user.Email, code.Code)
	case domain.OTPPurposeActivation:
		sendErr = s.mailer.SendActivateAccountResendOTP(user.Email, code.Code)
	case domain.OTPPurposeForgotPassword:
		sendErr = s.mailer.SendForgotPasswordResendOTP(user.Email, code.Code)
	}
	if sendErr != nil {
		s.log.Error("failed to send OTP email", zap.String("email", user.Email), zap.String("purpose", string(purpose)), zap.Error(sendErr))
		return fmt.Errorf("%w: %v", domain.ErrEmailSendFailed, sendErr)
	}

	s.logEvent(domain.NewAuditEvent(domain.EmailOTPRequestEvent, user.ID).WithEmail(user.Email).WithMetadata("purpose", string(purpose)))
	return nil
}

// Login authenticates credentials and returns a fresh session token.
// Account status is checked before the password so a blocked or
// deactivated user gets a specific message rather than a generic one.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}
	if user.IsBlocked {
		return nil, domain.ErrAccountBlocked
	}
	if user.IsDeleted {
		return nil, domain.ErrAccountDeleted
	}

	if !s.password.Verify(user.PasswordHash, password) {
		s.logEvent(domain.NewAuditEvent(domain.UserLoginFailureEvent, user.ID).WithEmail(user.Email).WithError(domain.ErrInvalidCredentials))
		return nil, domain.ErrInvalidCredentials
	}

	result, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logEvent(domain.NewAuditEvent(domain.UserLoginEvent, user.ID).WithEmail(user.Email))
	return result, nil
}

// Logout revokes a persisted session token. An unknown token is not an
// error: the session is gone either way.
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if err := s.tokens.DeleteByValue(ctx, token); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

// ForgotPassword issues a reset code. Delivery failure is fatal here:
// without the email the flow cannot continue.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !user.IsActive {
		return domain.ErrAccountInactive
	}

	code, err := s.otp.Issue()
	if err != nil {
		return err
	}
	user.OTPCode = code.Code
	user.OTPExpireAt = &code.ExpiresAt
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if err := s.mailer.SendForgotPasswordOTP(user.Email, code.Code); err != nil {
		s.log.Error("failed to send password reset OTP email", zap.String("email", user.Email), zap.Error(err))
		return fmt.Errorf("%w: %v", domain.ErrEmailSendFailed, err)
	}

	s.logEvent(domain.NewAuditEvent(domain.EmailOTPRequestEvent, user.ID).WithEmail(user.Email).WithMetadata("purpose", string(domain.OTPPurposeForgotPassword)))
	return nil
}

// VerifyPasswordResetOTP checks a reset code without consuming it; the
// same code is presented again with the new password.
func (s *AuthServiceImpl) VerifyPasswordResetOTP(ctx context.Context, email, code string) error {
	_, err := s.verifyOTP(ctx, email, code, false)
	return err
}

// ResetPassword validates the reset code, stores the new password and
// revokes every session the user holds.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if len(newPassword) < 6 {
		return domain.ErrPasswordTooShort
	}

	user, err := s.verifyOTP(ctx, email, code, false)
	if err != nil {
		return err
	}

	hash, err := s.password.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	user.OTPCode = ""
	user.OTPExpireAt = nil
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if err := s.tokens.DeleteAllForUser(ctx, user.ID); err != nil {
		s.log.Error("failed to revoke sessions after password reset", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	if err := s.mailer.SendPasswordResetSuccess(user.Email, user.Name); err != nil {
		s.log.Error("failed to send password reset confirmation", zap.String("email", user.Email), zap.Error(err))
	}

	s.logEvent(domain.NewAuditEvent(domain.PasswordResetEvent, user.ID).WithEmail(user.Email))
	return nil
}

// verifyOTP runs the shared code checks. When rejectVerified is set, an
// already verified account short-circuits before the code comparison.
func (s *AuthServiceImpl) verifyOTP(ctx context.Context, email, code string, rejectVerified bool) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if rejectVerified && user.IsEmailVerified {
		return nil, domain.ErrAlreadyVerified
	}
	if user.OTPCode == "" || user.OTPCode != code {
		s.logEvent(domain.NewAuditEvent(domain.EmailOTPFailureEvent, user.ID).WithEmail(user.Email).WithError(domain.ErrOTPInvalid))
		return nil, domain.ErrOTPInvalid
	}
	if user.OTPExpireAt == nil || time.Now().After(*user.OTPExpireAt) {
		return nil, domain.ErrOTPExpired
	}
	return user, nil
}

// issueToken generates a JWT carrying the user's primary role and
// persists it so logout and password reset can revoke it.
func (s *AuthServiceImpl) issueToken(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	role := "user"
	if roles, err := s.roles.RolesForUser(ctx, user.ID); err == nil && len(roles) > 0 {
		role = roles[0].Name
	}

	tokenStr, err := s.tokenSvc.Generate(user.ID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	token := &domain.Token{
		UserID:    user.ID,
		Token:     tokenStr,
		ExpiresAt: expiresAt,
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}

	return &domain.AuthResult{
		User:      user,
		Token:     tokenStr,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *AuthServiceImpl) logEvent(event *domain.AuditEvent) {
	fields := []zap.Field{
		zap.String("event_type", string(event.EventType)),
		zap.Uint("user_id", event.UserID),
		zap.Bool("success", event.Success),
	}
	if event.Email != "" {
		fields = append(fields, zap.String("email", event.Email))
	}
	if event.ErrorMsg != "" {
		fields = append(fields, zap.String("error", event.ErrorMsg))
	}
	if len(event.Metadata) > 0 {
		fields = append(fields, zap.Any("metadata", event.Metadata))
	}
	s.log.Info("audit event", fields...)
}
