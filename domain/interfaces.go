package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
}

// RoleRepository defines role catalog and assignment operations
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*Role, error)
	List(ctx context.Context) ([]Role, error)
	CreateAll(ctx context.Context, roles []Role) error
	Assign(ctx context.Context, userID, roleID uint) error
	RolesForUser(ctx context.Context, userID uint) ([]Role, error)
}

// TokenRepository defines persisted session token operations
type TokenRepository interface {
	Create(ctx context.Context, token *Token) error
	DeleteByValue(ctx context.Context, token string) error
	DeleteAllForUser(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// JobRepository defines job posting data access operations
type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	FindByID(ctx context.Context, id uint) (*Job, error)
	FindBySlug(ctx context.Context, slug string) (*Job, error)
	Update(ctx context.Context, job *Job) error
	SoftDelete(ctx context.Context, id uint, modifiedBy *uint) error
	List(ctx context.Context, filter JobFilter) ([]Job, int64, error)
	IncrementViews(ctx context.Context, id uint) error
}

// JobCache caches job detail reads; invalidated on writes.
type JobCache interface {
	Get(ctx context.Context, id uint) (*Job, error)
	Set(ctx context.Context, job *Job) error
	Invalidate(ctx context.Context, id uint) error
}

// AuthService defines the authentication business logic
type AuthService interface {
	Register(ctx context.Context, name, email, mobileNo, password string) (*User, error)
	VerifyRegistrationOTP(ctx context.Context, email, code string) (*AuthResult, error)
	VerifyActivationOTP(ctx context.Context, email, code string) (*User, error)
	ResendOTP(ctx context.Context, email string, purpose OTPPurpose) error
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email string) error
	VerifyPasswordResetOTP(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

// JobService defines job posting business logic
type JobService interface {
	Create(ctx context.Context, job *Job, postedBy *uint) (*Job, error)
	List(ctx context.Context, filter JobFilter) ([]Job, Pagination, error)
	Get(ctx context.Context, id uint) (*Job, error)
	View(ctx context.Context, id uint) (*Job, error)
	Update(ctx context.Context, id uint, changes *Job, modifiedBy *uint) (*Job, error)
	Delete(ctx context.Context, id uint, modifiedBy *uint) error
}

// OTPService defines one-time code issuance
type OTPService interface {
	Issue() (OTP, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines JWT operations. Validation is stateless: it
// checks the signature and embedded expiry only, never the token store.
type TokenService interface {
	Generate(userID uint, role string) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// Mailer defines the transactional emails the auth flows send.
type Mailer interface {
	SendRegisterOTP(to, code string) error
	SendRegisterResendOTP(to, code string) error
	SendActivateAccountOTP(to, code string) error
	SendActivateAccountResendOTP(to, code string) error
	SendForgotPasswordOTP(to, code string) error
	SendForgotPasswordResendOTP(to, code string) error
	SendWelcome(to, name string) error
	SendPasswordResetSuccess(to, name string) error
}
