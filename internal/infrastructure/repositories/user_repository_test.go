package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AbidMulla/off-compus-backend/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&DBUser{}, &DBRole{}, &DBUserRole{}, &DBToken{}, &DBJob{}))
	return db
}

func TestUserRepositoryCreateAndFind(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := &domain.User{Name: "Asha", Email: "Asha@Example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	// Lookup is case-insensitive because emails are stored lowercased.
	found, err := repo.FindByEmail(ctx, "ASHA@example.COM")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "asha@example.com", found.Email)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", byID.Email)
}

func TestUserRepositoryNotFound(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepositoryUpdateClearsOTP(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	expire := time.Now().Add(5 * time.Minute)
	user := &domain.User{Name: "Asha", Email: "asha@example.com", OTPCode: "123456", OTPExpireAt: &expire}
	require.NoError(t, repo.Create(ctx, user))

	user.OTPCode = ""
	user.OTPExpireAt = nil
	user.IsEmailVerified = true
	user.IsActive = true
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Empty(t, found.OTPCode)
	assert.Nil(t, found.OTPExpireAt)
	assert.True(t, found.IsEmailVerified)
	assert.True(t, found.IsActive)
}

func TestRoleRepositorySeedAndAssign(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoleRepository(db)
	ctx := context.Background()

	require.NoError(t, SeedRoles(ctx, repo))

	// Seeding twice must not duplicate the catalog.
	require.NoError(t, SeedRoles(ctx, repo))
	roles, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 3)

	admin, err := repo.FindByName(ctx, "admin")
	require.NoError(t, err)

	require.NoError(t, repo.Assign(ctx, 7, admin.ID))
	assigned, err := repo.RolesForUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, "admin", assigned[0].Name)
}

func TestRoleRepositoryFindByNameMissing(t *testing.T) {
	repo := NewRoleRepository(setupTestDB(t))

	_, err := repo.FindByName(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)
}

func TestTokenRepositoryLifecycle(t *testing.T) {
	repo := NewTokenRepository(setupTestDB(t))
	ctx := context.Background()

	for _, tok := range []string{"tok-a", "tok-b"} {
		require.NoError(t, repo.Create(ctx, &domain.Token{
			UserID:    1,
			Token:     tok,
			ExpiresAt: time.Now().Add(time.Hour),
		}))
	}
	require.NoError(t, repo.Create(ctx, &domain.Token{
		UserID:    2,
		Token:     "tok-c",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, repo.DeleteByValue(ctx, "tok-a"))
	// Deleting an unknown token is not an error.
	require.NoError(t, repo.DeleteByValue(ctx, "tok-a"))

	require.NoError(t, repo.DeleteAllForUser(ctx, 1))

	db := repo.(*TokenRepositoryImpl).db
	var count int64
	require.NoError(t, db.Model(&DBToken{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTokenRepositoryDeleteExpired(t *testing.T) {
	repo := NewTokenRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Token{UserID: 1, Token: "live", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, &domain.Token{UserID: 1, Token: "stale", ExpiresAt: time.Now().Add(-time.Hour)}))

	require.NoError(t, repo.DeleteExpired(ctx))

	db := repo.(*TokenRepositoryImpl).db
	var remaining []DBToken
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "live", remaining[0].Token)
}
