package mocks

import (
	"context"

	"github.com/AbidMulla/off-compus-backend/domain"
)

// MockTokenRepository implements domain.TokenRepository interface for testing
type MockTokenRepository struct {
	CreateFunc           func(ctx context.Context, token *domain.Token) error
	DeleteByValueFunc    func(ctx context.Context, token string) error
	DeleteAllForUserFunc func(ctx context.Context, userID uint) error
	DeleteExpiredFunc    func(ctx context.Context) error
}

// NewMockTokenRepository creates a new MockTokenRepository with default behaviors
func NewMockTokenRepository() *MockTokenRepository {
	return &MockTokenRepository{}
}

// Create persists a session token
func (m *MockTokenRepository) Create(ctx context.Context, token *domain.Token) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	return nil
}

// DeleteByValue removes a token record
func (m *MockTokenRepository) DeleteByValue(ctx context.Context, token string) error {
	if m.DeleteByValueFunc != nil {
		return m.DeleteByValueFunc(ctx, token)
	}
	return nil
}

// DeleteAllForUser removes every token a user holds
func (m *MockTokenRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	if m.DeleteAllForUserFunc != nil {
		return m.DeleteAllForUserFunc(ctx, userID)
	}
	return nil
}

// DeleteExpired removes stale token records
func (m *MockTokenRepository) DeleteExpired(ctx context.Context) error {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	return nil
}

// Ensure MockTokenRepository implements the interface
var _ domain.TokenRepository = (*MockTokenRepository)(nil)
