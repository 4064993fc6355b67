package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/AbidMulla/off-compus-backend/domain"
)

// TokenRepositoryImpl implements domain.TokenRepository using GORM
type TokenRepositoryImpl struct {
	db *gorm.DB
}

// DBToken represents the database model for a persisted session token
type DBToken struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	Token     string `gorm:"uniqueIndex;size:512"`
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (DBToken) TableName() string { return "tokens" }

// NewTokenRepository creates a new token repository
func NewTokenRepository(db *gorm.DB) domain.TokenRepository {
	return &TokenRepositoryImpl{db: db}
}

// Create implements domain.TokenRepository
func (r *TokenRepositoryImpl) Create(ctx context.Context, token *domain.Token) error {
	dbToken := &DBToken{
		UserID:    token.UserID,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
	}
	if err := r.db.WithContext(ctx).Create(dbToken).Error; err != nil {
		return err
	}
	token.ID = dbToken.ID
	token.CreatedAt = dbToken.CreatedAt
	return nil
}

// DeleteByValue implements domain.TokenRepository. Deleting a token that
// does not exist is not an error.
func (r *TokenRepositoryImpl) DeleteByValue(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&DBToken{}).Error
}

// DeleteAllForUser implements domain.TokenRepository. Used by password
// reset to force a global logout.
func (r *TokenRepositoryImpl) DeleteAllForUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&DBToken{}).Error
}

// DeleteExpired implements domain.TokenRepository
func (r *TokenRepositoryImpl) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("expires_at < ?", time.Now()).Delete(&DBToken{}).Error
}
