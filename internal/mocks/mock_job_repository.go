package mocks

import (
	"context"

	"github.com/AbidMulla/off-compus-backend/domain"
)

// MockJobRepository implements domain.JobRepository interface for testing
type MockJobRepository struct {
	CreateFunc         func(ctx context.Context, job *domain.Job) error
	FindByIDFunc       func(ctx context.Context, id uint) (*domain.Job, error)
	FindBySlugFunc     func(ctx context.Context, slug string) (*domain.Job, error)
	UpdateFunc         func(ctx context.Context, job *domain.Job) error
	SoftDeleteFunc     func(ctx context.Context, id uint, modifiedBy *uint) error
	ListFunc           func(ctx context.Context, filter domain.JobFilter) ([]domain.Job, int64, error)
	IncrementViewsFunc func(ctx context.Context, id uint) error
}

// NewMockJobRepository creates a new MockJobRepository with default behaviors
func NewMockJobRepository() *MockJobRepository {
	return &MockJobRepository{}
}

// Create stores a job posting
func (m *MockJobRepository) Create(ctx context.Context, job *domain.Job) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, job)
	}
	// Default behavior: success
	job.ID = 1
	return nil
}

// FindByID fetches a posting by id
func (m *MockJobRepository) FindByID(ctx context.Context, id uint) (*domain.Job, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrJobNotFound
}

// FindBySlug fetches a posting by slug
func (m *MockJobRepository) FindBySlug(ctx context.Context, slug string) (*domain.Job, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	// Default behavior: not found
	return nil, domain.ErrJobNotFound
}

// Update stores changes to a posting
func (m *MockJobRepository) Update(ctx context.Context, job *domain.Job) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, job)
	}
	return nil
}

// SoftDelete marks a posting deleted
func (m *MockJobRepository) SoftDelete(ctx context.Context, id uint, modifiedBy *uint) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, id, modifiedBy)
	}
	return nil
}

// List returns one page of postings
func (m *MockJobRepository) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

// IncrementViews bumps the view counter
func (m *MockJobRepository) IncrementViews(ctx context.Context, id uint) error {
	if m.IncrementViewsFunc != nil {
		return m.IncrementViewsFunc(ctx, id)
	}
	return nil
}

// Ensure MockJobRepository implements the interface
var _ domain.JobRepository = (*MockJobRepository)(nil)

// MockJobCache implements domain.JobCache interface for testing
type MockJobCache struct {
	GetFunc        func(ctx context.Context, id uint) (*domain.Job, error)
	SetFunc        func(ctx context.Context, job *domain.Job) error
	InvalidateFunc func(ctx context.Context, id uint) error
}

// NewMockJobCache creates a new MockJobCache with default behaviors
func NewMockJobCache() *MockJobCache {
	return &MockJobCache{}
}

// Get reads a cached posting
func (m *MockJobCache) Get(ctx context.Context, id uint) (*domain.Job, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	// Default behavior: miss
	return nil, nil
}

// Set caches a posting
func (m *MockJobCache) Set(ctx context.Context, job *domain.Job) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, job)
	}
	return nil
}

// Invalidate drops a cached posting
func (m *MockJobCache) Invalidate(ctx context.Context, id uint) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, id)
	}
	return nil
}

// Ensure MockJobCache implements the interface
var _ domain.JobCache = (*MockJobCache)(nil)
