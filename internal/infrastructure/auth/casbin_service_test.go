package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testRBACModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = (g(r.sub, p.sub) || r.sub == p.sub) && keyMatch(r.obj, p.obj) && regexMatch(r.act, p.act)
`

func setupCasbin(t *testing.T) *CasbinService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	modelPath := filepath.Join(t.TempDir(), "rbac_model.conf")
	require.NoError(t, os.WriteFile(modelPath, []byte(testRBACModel), 0o600))

	svc, err := NewCasbinService(db, modelPath)
	require.NoError(t, err)
	return svc
}

func TestSeedDefaultPolicies(t *testing.T) {
	svc := setupCasbin(t)

	require.NoError(t, svc.SeedDefaultPolicies())

	allowed, err := svc.E.Enforce("role_admin", "/api/admin/jobs/7", "PUT")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = svc.E.Enforce("role_superadmin", "/api/admin/add-job", "POST")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = svc.E.Enforce("role_user", "/api/admin/jobs", "GET")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestSeedDefaultPoliciesIdempotent(t *testing.T) {
	svc := setupCasbin(t)

	require.NoError(t, svc.SeedDefaultPolicies())
	require.NoError(t, svc.SeedDefaultPolicies())

	policies, err := svc.E.GetPolicy()
	require.NoError(t, err)
	assert.Len(t, policies, 2)
}
