package auth

import (
	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

type CasbinService struct{ E *casbin.Enforcer }

func NewCasbinService(db *gorm.DB, modelPath string) (*CasbinService, error) {
	adp, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(modelPath, adp)
	if err != nil {
		return nil, err
	}
	if err := e.LoadPolicy(); err != nil {
		return nil, err
	}
	return &CasbinService{e}, nil
}

// SeedDefaultPolicies installs the admin-route policies when the policy
// table is empty. Admins and superadmins get the whole /api/admin tree.
func (s *CasbinService) SeedDefaultPolicies() error {
	policies, err := s.E.GetPolicy()
	if err != nil {
		return err
	}
	if len(policies) > 0 {
		return nil
	}
	if _, err := s.E.AddPolicy("role_admin", "/api/admin/*", "(GET|POST|PUT|DELETE)"); err != nil {
		return err
	}
	if _, err := s.E.AddPolicy("role_superadmin", "/api/admin/*", "(GET|POST|PUT|DELETE)"); err != nil {
		return err
	}
	return s.E.SavePolicy()
}
