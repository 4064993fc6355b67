package mocks

import (
	"context"

	"github.com/AbidMulla/off-compus-backend/domain"
)

// MockRoleRepository implements domain.RoleRepository interface for testing
type MockRoleRepository struct {
	FindByNameFunc   func(ctx context.Context, name string) (*domain.Role, error)
	ListFunc         func(ctx context.Context) ([]domain.Role, error)
	CreateAllFunc    func(ctx context.Context, roles []domain.Role) error
	AssignFunc       func(ctx context.Context, userID, roleID uint) error
	RolesForUserFunc func(ctx context.Context, userID uint) ([]domain.Role, error)
}

// NewMockRoleRepository creates a new MockRoleRepository with default behaviors
func NewMockRoleRepository() *MockRoleRepository {
	return &MockRoleRepository{}
}

// FindByName finds a role by name
func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	// Default behavior: return the requested role
	return &domain.Role{ID: 1, Name: name, IsActive: true}, nil
}

// List returns the role catalog
func (m *MockRoleRepository) List(ctx context.Context) ([]domain.Role, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

// CreateAll inserts a batch of roles
func (m *MockRoleRepository) CreateAll(ctx context.Context, roles []domain.Role) error {
	if m.CreateAllFunc != nil {
		return m.CreateAllFunc(ctx, roles)
	}
	return nil
}

// Assign links a user to a role
func (m *MockRoleRepository) Assign(ctx context.Context, userID, roleID uint) error {
	if m.AssignFunc != nil {
		return m.AssignFunc(ctx, userID, roleID)
	}
	return nil
}

// RolesForUser returns the roles assigned to a user
func (m *MockRoleRepository) RolesForUser(ctx context.Context, userID uint) ([]domain.Role, error) {
	if m.RolesForUserFunc != nil {
		return m.RolesForUserFunc(ctx, userID)
	}
	// Default behavior: plain user
	return []domain.Role{{ID: 1, Name: "user", IsActive: true}}, nil
}

// Ensure MockRoleRepository implements the interface
var _ domain.RoleRepository = (*MockRoleRepository)(nil)
