package mocks

import (
	"context"
	"time"

	"github.com/AbidMulla/off-compus-backend/domain"
)

// MockPasswordService implements domain.PasswordService interface for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// Hash hashes a password
func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	// Default behavior: reversible marker
	return "hashed:" + password, nil
}

// Verify compares a hash with a candidate password
func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return hashedPassword == "hashed:"+password
}

var _ domain.PasswordService = (*MockPasswordService)(nil)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateFunc func(userID uint, role string) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate creates a token
func (m *MockTokenService) Generate(userID uint, role string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	return "test-token", nil
}

// Validate checks a token
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	return &domain.TokenClaims{UserID: 1, Role: "user"}, nil
}

var _ domain.TokenService = (*MockTokenService)(nil)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	IssueFunc func() (domain.OTP, error)
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Issue generates a code
func (m *MockOTPService) Issue() (domain.OTP, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc()
	}
	return domain.OTP{Code: "123456", ExpiresAt: time.Now().Add(5 * time.Minute)}, nil
}

var _ domain.OTPService = (*MockOTPService)(nil)

// MockMailer implements domain.Mailer interface for testing. Sent
// records every delivery so tests can assert on them.
type MockMailer struct {
	SendRegisterOTPFunc              func(to, code string) error
	SendRegisterResendOTPFunc        func(to, code string) error
	SendActivateAccountOTPFunc       func(to, code string) error
	SendActivateAccountResendOTPFunc func(to, code string) error
	SendForgotPasswordOTPFunc        func(to, code string) error
	SendForgotPasswordResendOTPFunc  func(to, code string) error
	SendWelcomeFunc                  func(to, name string) error
	SendPasswordResetSuccessFunc     func(to, name string) error

	Sent []string
}

// NewMockMailer creates a new MockMailer with default behaviors
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) record(kind string, fn func(string, string) error, a, b string) error {
	if fn != nil {
		return fn(a, b)
	}
	m.Sent = append(m.Sent, kind)
	return nil
}

func (m *MockMailer) SendRegisterOTP(to, code string) error {
	return m.record("register_otp", m.SendRegisterOTPFunc, to, code)
}

func (m *MockMailer) SendRegisterResendOTP(to, code string) error {
	return m.record("register_resend_otp", m.SendRegisterResendOTPFunc, to, code)
}

func (m *MockMailer) SendActivateAccountOTP(to, code string) error {
	return m.record("activate_account_otp", m.SendActivateAccountOTPFunc, to, code)
}

func (m *MockMailer) SendActivateAccountResendOTP(to, code string) error {
	return m.record("activate_account_resend_otp", m.SendActivateAccountResendOTPFunc, to, code)
}

func (m *MockMailer) SendForgotPasswordOTP(to, code string) error {
	return m.record("forgot_password_otp", m.SendForgotPasswordOTPFunc, to, code)
}

func (m *MockMailer) SendForgotPasswordResendOTP(to, code string) error {
	return m.record("forgot_password_resend_otp", m.SendForgotPasswordResendOTPFunc, to, code)
}

func (m *MockMailer) SendWelcome(to, name string) error {
	return m.record("welcome", m.SendWelcomeFunc, to, name)
}

func (m *MockMailer) SendPasswordResetSuccess(to, name string) error {
	return m.record("password_reset_success", m.SendPasswordResetSuccessFunc, to, name)
}

var _ domain.Mailer = (*MockMailer)(nil)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc               func(ctx context.Context, name, email, mobileNo, password string) (*domain.User, error)
	VerifyRegistrationOTPFunc  func(ctx context.Context, email, code string) (*domain.AuthResult, error)
	VerifyActivationOTPFunc    func(ctx context.Context, email, code string) (*domain.User, error)
	ResendOTPFunc              func(ctx context.Context, email string, purpose domain.OTPPurpose) error
	LoginFunc                  func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	LogoutFunc                 func(ctx context.Context, token string) error
	ForgotPasswordFunc         func(ctx context.Context, email string) error
	VerifyPasswordResetOTPFunc func(ctx context.Context, email, code string) error
	ResetPasswordFunc          func(ctx context.Context, email, code, newPassword string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, name, email, mobileNo, password string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, mobileNo, password)
	}
	return &domain.User{ID: 1, Name: name, Email: email}, nil
}

func (m *MockAuthService) VerifyRegistrationOTP(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	if m.VerifyRegistrationOTPFunc != nil {
		return m.VerifyRegistrationOTPFunc(ctx, email, code)
	}
	return &domain.AuthResult{User: &domain.User{ID: 1, Email: email}, Token: "test-token"}, nil
}

func (m *MockAuthService) VerifyActivationOTP(ctx context.Context, email, code string) (*domain.User, error) {
	if m.VerifyActivationOTPFunc != nil {
		return m.VerifyActivationOTPFunc(ctx, email, code)
	}
	return &domain.User{ID: 1, Email: email}, nil
}

func (m *MockAuthService) ResendOTP(ctx context.Context, email string, purpose domain.OTPPurpose) error {
	if m.ResendOTPFunc != nil {
		return m.ResendOTPFunc(ctx, email, purpose)
	}
	return nil
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return &domain.AuthResult{User: &domain.User{ID: 1, Email: email}, Token: "test-token"}, nil
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token)
	}
	return nil
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	return nil
}

func (m *MockAuthService) VerifyPasswordResetOTP(ctx context.Context, email, code string) error {
	if m.VerifyPasswordResetOTPFunc != nil {
		return m.VerifyPasswordResetOTPFunc(ctx, email, code)
	}
	return nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, code, newPassword)
	}
	return nil
}

var _ domain.AuthService = (*MockAuthService)(nil)

// MockJobService implements domain.JobService interface for testing
type MockJobService struct {
	CreateFunc func(ctx context.Context, job *domain.Job, postedBy *uint) (*domain.Job, error)
	ListFunc   func(ctx context.Context, filter domain.JobFilter) ([]domain.Job, domain.Pagination, error)
	GetFunc    func(ctx context.Context, id uint) (*domain.Job, error)
	ViewFunc   func(ctx context.Context, id uint) (*domain.Job, error)
	UpdateFunc func(ctx context.Context, id uint, changes *domain.Job, modifiedBy *uint) (*domain.Job, error)
	DeleteFunc func(ctx context.Context, id uint, modifiedBy *uint) error
}

// NewMockJobService creates a new MockJobService with default behaviors
func NewMockJobService() *MockJobService {
	return &MockJobService{}
}

func (m *MockJobService) Create(ctx context.Context, job *domain.Job, postedBy *uint) (*domain.Job, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, job, postedBy)
	}
	job.ID = 1
	return job, nil
}

func (m *MockJobService) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, domain.Pagination, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, domain.Pagination{Current: 1}, nil
}

func (m *MockJobService) Get(ctx context.Context, id uint) (*domain.Job, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrJobNotFound
}

func (m *MockJobService) View(ctx context.Context, id uint) (*domain.Job, error) {
	if m.ViewFunc != nil {
		return m.ViewFunc(ctx, id)
	}
	return nil, domain.ErrJobNotFound
}

func (m *MockJobService) Update(ctx context.Context, id uint, changes *domain.Job, modifiedBy *uint) (*domain.Job, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, changes, modifiedBy)
	}
	return nil, domain.ErrJobNotFound
}

func (m *MockJobService) Delete(ctx context.Context, id uint, modifiedBy *uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, modifiedBy)
	}
	return nil
}

var _ domain.JobService = (*MockJobService)(nil)
