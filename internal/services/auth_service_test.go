package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AbidMulla/off-compus-backend/domain"
	"github.com/AbidMulla/off-compus-backend/internal/mocks"
)

type authFixture struct {
	users  *mocks.MockUserRepository
	roles  *mocks.MockRoleRepository
	tokens *mocks.MockTokenRepository
	otp    *mocks.MockOTPService
	mailer *mocks.MockMailer
	svc    domain.AuthService
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:  mocks.NewMockUserRepository(),
		roles:  mocks.NewMockRoleRepository(),
		tokens: mocks.NewMockTokenRepository(),
		otp:    mocks.NewMockOTPService(),
		mailer: mocks.NewMockMailer(),
	}
	f.svc = NewAuthService(
		f.users, f.roles, f.tokens,
		mocks.NewMockPasswordService(),
		mocks.NewMockTokenService(),
		f.otp, f.mailer,
		zap.NewNop(),
		7*24*time.Hour,
	)
	return f
}

func verifiedUser(email string) *domain.User {
	return &domain.User{
		ID:              1,
		Name:            "Asha",
		Email:           email,
		PasswordHash:    "hashed:secret123",
		IsEmailVerified: true,
		IsActive:        true,
	}
}

func TestRegisterCreatesUnverifiedUser(t *testing.T) {
	f := newAuthFixture()

	var created *domain.User
	f.users.CreateFunc = func(ctx context.Context, u *domain.User) error {
		u.ID = 7
		created = u
		return nil
	}

	user, err := f.svc.Register(context.Background(), "Asha", "Asha@Example.com", "9999999999", "secret123")
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "asha@example.com", user.Email)
	assert.False(t, user.IsEmailVerified)
	assert.False(t, user.IsActive)
	assert.Equal(t, "123456", user.OTPCode)
	require.NotNil(t, user.OTPExpireAt)
	assert.Equal(t, []string{"register_otp"}, f.mailer.Sent)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	f.users.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return verifiedUser(email), nil
	}

	_, err := f.svc.Register(context.Background(), "Asha", "asha@example.com", "", "secret123")
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestRegisterShortPassword(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.Register(context.Background(), "Asha", "asha@example.com", "", "abc")
	assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
}

func TestRegisterEmailFailureDoesNotFail(t *testing.T) {
	f := newAuthFixture()
	f.mailer.SendRegisterOTPFunc = func(to, code string) error {
		return errors.New("smtp down")
	}

	_, err := f.svc.Register(context.Background(), "Asha", "asha@example.com", "", "secret123")
	assert.NoError(t, err)
}

func TestVerifyRegistrationOTP(t *testing.T) {
	f := newAuthFixture()
	expire := time.Now().Add(3 * time.Minute)
	stored := &domain.User{ID: 1, Email: "asha@example.com", OTPCode: "123456", OTPExpireAt: &expire}
	f.users.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return stored, nil
	}

	var updated *domain.User
	f.users.UpdateFunc = func(ctx context.Context, u *domain.User) error {
		updated = u
		return nil
	}

	var persisted *domain.Token
	f.tokens.CreateFunc = func(ctx context.Context, tok *domain.Token) error {
		persisted = tok
		return nil
	}

	result, err := f.svc.VerifyRegistrationOTP(context.Background(), "asha@example.com", "123456")
	require.NoError(t, err)

	assert.Equal(t, "test-token", result.Token)
	require.NotNil(t, updated)
	assert.True(t, updated.IsEmailVerified)
	assert.True(t, updated.IsActive)
	assert.Empty(t, updated.OTPCode)
	assert.Nil(t, updated.OTPExpireAt)

	require.NotNil(t, persisted)
	assert.Equal(t, uint(1), persisted.UserID)
	assert.Contains(t, f.mailer.Sent, "welcome")
}

func TestVerifyRegistrationOTPErrors(t *testing.T) {
	expire := time.Now().Add(3 * time.Minute)
	past := time.Now().Add(-time.Minute)

	tests := []struct {
		name    string
		user    *domain.User
		findErr error
		code    string
		wantErr error
	}{
		{
			name:    "unknown user",
			findErr: domain.ErrUserNotFound,
			code:    "123456",
			wantErr: domain.ErrUserNotFound,
		},
		{
			name:    "already verified",
			user:    &domain.User{ID: 1, Email: "a@b.c", IsEmailVerified: true, OTPCode: "123456", OTPExpireAt: &expire},
			code:    "123456",
			wantErr: domain.ErrAlreadyVerified,
		},
		{
			name:    "wrong code",
			user:    &domain.User{ID: 1, Email: "a@b.c", OTPCode: "123456", OTPExpireAt: &expire},
			code:    "654321",
			wantErr: domain.ErrOTPInvalid,
		},
		{
			name:    "no code issued",
			user:    &domain.User{ID: 1, Email: "a@b.c"},
			code:    "123456",
			wantErr: domain.ErrOTPInvalid,
		},
		{
			name:    "expired code",
			user:    &domain.User{ID: 1, Email: "a@b.c", OTPCode: "123456", OTPExpireAt: &past},
			code:    "123456",
			wantErr: domain.ErrOTPExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			f.users.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
				if tt.findErr != nil {
					return nil, tt.findErr
				}
				return tt.user, nil
			}

			_, err := f.svc.VerifyRegistrationOTP(context.Background(), "a@b.c", tt.code)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVerifyOTPConsumedOnce(t *testing.T) {
	f := newAuthFixture()
	expire := time.Now().Add(3 * time.Minute)
	stored := &domain.User{ID: 1, Email: "a@b.c", OTPCode: "123456", OTPExpireAt: &expire}
	f.users.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return stored, nil
	}

	_, err := f.svc.VerifyActivationOTP(context.Background(), "a@b.c", "123456")
	require.NoError(t, err)

	// The code was cleared and the account marked verified; a replay
	// fails on the verified check.
	_, err = f.svc.VerifyActivationOTP(context.Background(), "a@b.c", "123456")
	assert.ErrorIs(t, err, domain.ErrAlreadyVerified)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		user     *domain.User
		findErr  error
		password string
		wantErr  error
	}{
		{
			name:     "unknown user reads as bad credentials",
			findErr:  domain.ErrUserNotFound,
			password: "secret123",
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name:     "inactive account",
			user:     &domain.User{ID: 1, Email: "a@b.c", PasswordHash: "hashed:secret123"},
			password: "secret123",
			wantErr:  domain.ErrAccountInactive,
		},
		{
			name:     "blocked account",
			user:     &domain.User{ID: 1, Email: "a@b.c", PasswordHash: "hashed:secret123", IsActive: true, IsBlocked: true},
			password: "secret123",
			wantErr:  domain.ErrAccountBlocked,
		},
		{
			name:     "soft-deleted account",
			user:     &domain.User{ID: 1, Email: "a@b.c", PasswordHash: "hashed:secret123", IsActive: true, IsDeleted: true},
			password: "secret123",
			wantErr:  domain.ErrAccountDeleted,
		},
		{
			name:     "wrong password",
			user:     verifiedUser("a@b.c"),
			password: "nope",
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name:     "success",
			user:     verifiedUser("a@b.c"),
			password: "secret123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			f.users.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
				if tt.findErr != nil {
					return nil, tt.findErr
				}
				return tt.user, nil
			}

			result, err := f.svc.Login(context.Background(), "a@b.c", tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "test-token", result.Token)
		})
	}
}

func TestResendOTPAlreadyVerified(t *testing.T) {
	f := newAuthFixture()
	f.users.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return verifiedUser(email), nil
	}

	err := f.svc.ResendOTP(context.Background(), "a@b.c", domain.OTPPurposeRegistration)
	assert.ErrorIs(t, err, domain.ErrAlreadyVerified)
}

func TestResendOTPOverwritesCode(t *testing.T) {
	f := newAuthFixture()
	old := time.Now().Add(time.Minute)
	stored := &domain.User{ID: 1, Email: "a@b.c", OTPCode: "111111", OTPExpireAt: &old}
	f.users.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return stored, nil
	}

	err := f.svc.ResendOTP(context.Background(), "a@b.c", domain.OTPPurposeActivation)
	require.NoError(t, err)

	assert.Equal(t, "123456", stored.OTPCode)
	assert.Equal(t, []string{"activate_account_resend_otp"}, f.mailer.Sent)
}

func TestResendOTPEmailFailureIsFatal(t *testing.T) {
	f := newAuthFixture()
	stored := &domain.User{ID: 1, Email: "a@b.c", IsActive: true, IsEmailVerified: true}
	f.users.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return stored, nil
	}
	f.mailer.SendForgotPasswordResendOTPFunc = func(to, code string) error {
		return errors.New("smtp down")
	}

	err := f.svc.ResendOTP(context.Background(), "a@b.c", domain.OTPPurposeForgotPassword)
	assert.ErrorIs(t, err, domain.ErrEmailSendFailed)
}

func TestForgotPasswordInactiveAccount(t *testing.T) {
	f := newAuthFixture()
	f.users.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: 1, Email: email}, nil
	}

	err := f.svc.ForgotPassword(context.Background(), "a@b.c")
	assert.ErrorIs(t, err, domain.ErrAccountInactive)
}

func TestForgotPasswordEmailFailureIsFatal(t *testing.T) {
	f := newAuthFixture()
	f.users.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return verifiedUser(email), nil
	}
	f.mailer.SendForgotPasswordOTPFunc = func(to, code string) error {
		return errors.New("smtp down")
	}

	err := f.svc.ForgotPassword(context.Background(), "a@b.c")
	assert.ErrorIs(t, err, domain.ErrEmailSendFailed)
}

func TestResetPassword(t *testing.T) {
	f := newAuthFixture()
	expire := time.Now().Add(3 * time.Minute)
	stored := verifiedUser("a@b.c")
	stored.OTPCode = "123456"
	stored.OTPExpireAt = &expire
	f.users.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return stored, nil
	}

	var revokedUser uint
	f.tokens.DeleteAllForUserFunc = func(ctx context.Context, userID uint) error {
		revokedUser = userID
		return nil
	}

	err := f.svc.ResetPassword(context.Background(), "a@b.c", "123456", "newsecret")
	require.NoError(t, err)

	assert.Equal(t, "hashed:newsecret", stored.PasswordHash)
	assert.Empty(t, stored.OTPCode)
	assert.Nil(t, stored.OTPExpireAt)
	assert.Equal(t, uint(1), revokedUser)
	assert.Contains(t, f.mailer.Sent, "password_reset_success")
}

func TestResetPasswordTooShort(t *testing.T) {
	f := newAuthFixture()

	err := f.svc.ResetPassword(context.Background(), "a@b.c", "123456", "abc")
	assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
}

func TestVerifyPasswordResetOTPDoesNotConsume(t *testing.T) {
	f := newAuthFixture()
	expire := time.Now().Add(3 * time.Minute)
	stored := verifiedUser("a@b.c")
	stored.OTPCode = "123456"
	stored.OTPExpireAt = &expire
	f.users.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return stored, nil
	}

	require.NoError(t, f.svc.VerifyPasswordResetOTP(context.Background(), "a@b.c", "123456"))
	assert.Equal(t, "123456", stored.OTPCode)

	// The same code still works for the actual reset.
	require.NoError(t, f.svc.ResetPassword(context.Background(), "a@b.c", "123456", "newsecret"))
}

func TestLogoutDeletesToken(t *testing.T) {
	f := newAuthFixture()

	var deleted string
	f.tokens.DeleteByValueFunc = func(ctx context.Context, token string) error {
		deleted = token
		return nil
	}

	require.NoError(t, f.svc.Logout(context.Background(), "abc.def.ghi"))
	assert.Equal(t, "abc.def.ghi", deleted)
}
