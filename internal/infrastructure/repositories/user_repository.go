package repositories

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/AbidMulla/off-compus-backend/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"size:100"`
	Email           string `gorm:"uniqueIndex;size:320"`
	PasswordHash    string `gorm:"column:password;size:255"`
	MobileNo        string `gorm:"size:25"`
	IsEmailVerified bool   `gorm:"index"`
	IsActive        bool   `gorm:"index"`
	IsBlocked       bool
	IsDeleted       bool
	OTPCode         string `gorm:"size:10"`
	OTPExpireAt     *time.Time
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository. Lookup is
// case-insensitive: emails are stored lowercased.
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository. Save writes every column, so
// cleared OTP fields are persisted as empty values rather than skipped.
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	return r.db.WithContext(ctx).Save(dbUser).Error
}

func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:              user.ID,
		Name:            user.Name,
		Email:           strings.ToLower(user.Email),
		PasswordHash:    user.PasswordHash,
		MobileNo:        user.MobileNo,
		IsEmailVerified: user.IsEmailVerified,
		IsActive:        user.IsActive,
		IsBlocked:       user.IsBlocked,
		IsDeleted:       user.IsDeleted,
		OTPCode:         user.OTPCode,
		OTPExpireAt:     user.OTPExpireAt,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:              dbUser.ID,
		Name:            dbUser.Name,
		Email:           dbUser.Email,
		PasswordHash:    dbUser.PasswordHash,
		MobileNo:        dbUser.MobileNo,
		IsEmailVerified: dbUser.IsEmailVerified,
		IsActive:        dbUser.IsActive,
		IsBlocked:       dbUser.IsBlocked,
		IsDeleted:       dbUser.IsDeleted,
		OTPCode:         dbUser.OTPCode,
		OTPExpireAt:     dbUser.OTPExpireAt,
		CreatedAt:       dbUser.CreatedAt,
		UpdatedAt:       dbUser.UpdatedAt,
	}
}
