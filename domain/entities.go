package domain

import "time"

// User represents an account in the portal. OTP fields are transient:
// they are set when a code is issued and cleared once it is consumed.
type User struct {
	ID              uint
	Name            string
	Email           string
	PasswordHash    string `gorm:"column:password"`
	MobileNo        string
	IsEmailVerified bool
	IsActive        bool
	IsBlocked       bool
	IsDeleted       bool
	OTPCode         string
	OTPExpireAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Role is a catalog entry seeded at startup (user/admin/superadmin).
type Role struct {
	ID          uint
	Name        string
	Description string
	RoleType    string
	IsActive    bool
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserRole links a user to a role (many-to-many join).
type UserRole struct {
	ID        uint
	UserID    uint
	RoleID    uint
	CreatedAt time.Time
}

// Token is a persisted session credential. JWT verification is
// stateless; these records exist so logout and password reset can revoke
// sessions by deleting them.
type Token struct {
	ID        uint
	UserID    uint
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// OTP is a one-time numeric code with an absolute expiry.
type OTP struct {
	Code      string
	ExpiresAt time.Time
}

// AuthResult represents a successful authentication outcome.
type AuthResult struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}

// JobSection is one titled block of a job posting body.
type JobSection struct {
	Title       string   `json:"title"`
	Description []string `json:"description"`
	Type        string   `json:"type"`
	Order       int      `json:"order"`
}

// Job is an admin-managed job posting with SEO and OpenGraph metadata.
type Job struct {
	ID             uint
	JobTitle       string
	Slug           string
	JobDescription string
	JobProfile     string
	Company        string
	Location       string

	Batch      []string
	Degrees    []string
	MinSalary  *int
	MaxSalary  *int
	Currency   string
	SalaryType string

	JobType        string
	EmploymentType string
	ExperienceType string

	JobPostDate   *time.Time
	JobPostTime   string
	JobExpireDate *time.Time
	JobExpireTime string
	Status        string

	Sections  []JobSection
	ApplyLink string

	ViewCount       int
	ApplyClickCount int

	IsDeleted bool

	// Pointers so a partial update can tell "not mentioned" from
	// "explicitly false".
	IsFeatured *bool
	IsUrgent   *bool

	PostedBy       *uint
	LastModifiedBy *uint

	MetaTitle       string
	MetaDescription string
	MetaKeywords    []string

	SEOTitle       string
	SEODescription string
	SEOKeywords    string

	OGTitle       string
	OGDescription string
	OGImage       string
	OGImageWidth  int
	OGImageHeight int
	OGImageAlt    string
	OGURL         string
	OGSiteName    string
	OGLocale      string
	OGType        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Job lifecycle statuses.
const (
	JobStatusDraft   = "Draft"
	JobStatusActive  = "Active"
	JobStatusExpired = "Expired"
)

// JobFilter captures the list-endpoint query parameters.
type JobFilter struct {
	Page           int
	Limit          int
	Status         string
	Search         string
	JobType        string
	Location       string
	EmploymentType string
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

// TokenClaims represents the identity embedded in a JWT.
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// OTPPurpose selects the precondition and email template for an OTP
// resend. Registration and activation resends require an unverified
// account; forgot-password resends require an active one.
type OTPPurpose string

const (
	OTPPurposeRegistration   OTPPurpose = "registration"
	OTPPurposeActivation     OTPPurpose = "activation"
	OTPPurposeForgotPassword OTPPurpose = "forgot_password"
)
