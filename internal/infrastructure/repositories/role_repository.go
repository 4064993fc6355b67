package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/AbidMulla/off-compus-backend/domain"
)

// RoleRepositoryImpl implements domain.RoleRepository using GORM
type RoleRepositoryImpl struct {
	db *gorm.DB
}

// DBRole represents the database model for Role
type DBRole struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:255"`
	Description string `gorm:"size:1000"`
	RoleType    string `gorm:"size:50"`
	IsActive    bool
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (DBRole) TableName() string { return "roles" }

// DBUserRole represents the user-role join table
type DBUserRole struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index"`
	RoleID    uint `gorm:"index"`
	CreatedAt time.Time
}

func (DBUserRole) TableName() string { return "user_roles" }

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) domain.RoleRepository {
	return &RoleRepositoryImpl{db: db}
}

// FindByName implements domain.RoleRepository
func (r *RoleRepositoryImpl) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	var dbRole DBRole
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&dbRole).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbRole), nil
}

// List implements domain.RoleRepository
func (r *RoleRepositoryImpl) List(ctx context.Context) ([]domain.Role, error) {
	var dbRoles []DBRole
	if err := r.db.WithContext(ctx).Find(&dbRoles).Error; err != nil {
		return nil, err
	}
	roles := make([]domain.Role, 0, len(dbRoles))
	for i := range dbRoles {
		roles = append(roles, *r.dbToDomain(&dbRoles[i]))
	}
	return roles, nil
}

// CreateAll implements domain.RoleRepository
func (r *RoleRepositoryImpl) CreateAll(ctx context.Context, roles []domain.Role) error {
	dbRoles := make([]DBRole, 0, len(roles))
	for i := range roles {
		dbRoles = append(dbRoles, DBRole{
			Name:        roles[i].Name,
			Description: roles[i].Description,
			RoleType:    roles[i].RoleType,
			IsActive:    roles[i].IsActive,
		})
	}
	return r.db.WithContext(ctx).Create(&dbRoles).Error
}

// Assign implements domain.RoleRepository
func (r *RoleRepositoryImpl) Assign(ctx context.Context, userID, roleID uint) error {
	return r.db.WithContext(ctx).Create(&DBUserRole{UserID: userID, RoleID: roleID}).Error
}

// RolesForUser implements domain.RoleRepository
func (r *RoleRepositoryImpl) RolesForUser(ctx context.Context, userID uint) ([]domain.Role, error) {
	var dbRoles []DBRole
	err := r.db.WithContext(ctx).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Find(&dbRoles).Error
	if err != nil {
		return nil, err
	}
	roles := make([]domain.Role, 0, len(dbRoles))
	for i := range dbRoles {
		roles = append(roles, *r.dbToDomain(&dbRoles[i]))
	}
	return roles, nil
}

func (r *RoleRepositoryImpl) dbToDomain(dbRole *DBRole) *domain.Role {
	return &domain.Role{
		ID:          dbRole.ID,
		Name:        dbRole.Name,
		Description: dbRole.Description,
		RoleType:    dbRole.RoleType,
		IsActive:    dbRole.IsActive,
		IsDeleted:   dbRole.IsDeleted,
		CreatedAt:   dbRole.CreatedAt,
		UpdatedAt:   dbRole.UpdatedAt,
	}
}

// DefaultRoles is the catalog seeded on first startup.
var DefaultRoles = []domain.Role{
	{Name: "user", Description: "Regular user with basic access", RoleType: "user", IsActive: true},
	{Name: "admin", Description: "Administrator with management access", RoleType: "admin", IsActive: true},
	{Name: "superadmin", Description: "Super administrator with full system access", RoleType: "superadmin", IsActive: true},
}

// SeedRoles inserts the default role catalog when the table is empty.
func SeedRoles(ctx context.Context, repo domain.RoleRepository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	return repo.CreateAll(ctx, DefaultRoles)
}
