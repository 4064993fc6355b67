package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AbidMulla/off-compus-backend/domain"
	"github.com/AbidMulla/off-compus-backend/internal/config"
	"github.com/AbidMulla/off-compus-backend/internal/infrastructure/auth"
	"github.com/AbidMulla/off-compus-backend/internal/infrastructure/database"
	"github.com/AbidMulla/off-compus-backend/internal/infrastructure/notifications"
	"github.com/AbidMulla/off-compus-backend/internal/infrastructure/repositories"
	"github.com/AbidMulla/off-compus-backend/internal/http/handlers"
	"github.com/AbidMulla/off-compus-backend/internal/http/middleware"
	"github.com/AbidMulla/off-compus-backend/internal/services"
)

// Container holds every wired dependency of the service.
type Container struct {
	Config *config.Config
	Log    *zap.SugaredLogger

	DB    *gorm.DB
	Redis *database.RedisClient

	UserRepo  domain.UserRepository
	RoleRepo  domain.RoleRepository
	TokenRepo domain.TokenRepository
	JobRepo   domain.JobRepository
	JobCache  domain.JobCache

	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	OTPSvc      domain.OTPService
	Mailer      domain.Mailer
	CasbinSvc   *auth.CasbinService

	AuthSvc domain.AuthService
	JobSvc  domain.JobService

	AuthHandlers *handlers.AuthHandlers
	JobHandlers  *handlers.JobHandlers
	AuthMW       *middleware.AuthMW
	CasbinMW     *middleware.CasbinMW
}

// NewContainer builds the dependency graph: storage, services, handlers
// and middleware, plus startup seeding for roles and policies.
func NewContainer(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*Container, error) {
	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	casbinSvc, err := auth.NewCasbinService(db, cfg.CasbinModelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize casbin: %w", err)
	}
	if err := casbinSvc.SeedDefaultPolicies(); err != nil {
		return nil, fmt.Errorf("failed to seed casbin policies: %w", err)
	}

	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	tokenRepo := repositories.NewTokenRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	jobCache := repositories.NewJobCache(rdb.Client, cfg.JobCacheTTL)

	if err := repositories.SeedRoles(ctx, roleRepo); err != nil {
		return nil, fmt.Errorf("failed to seed roles: %w", err)
	}

	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	otpSvc := services.NewOTPService(cfg.OTPTTL)
	mailer := notifications.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, log)

	authSvc := services.NewAuthService(userRepo, roleRepo, tokenRepo, passwordSvc, tokenSvc, otpSvc, mailer, log.Desugar(), cfg.TokenTTL)
	jobSvc := services.NewJobService(jobRepo, jobCache, log.Desugar())

	return &Container{
		Config: cfg,
		Log:    log,

		DB:    db,
		Redis: rdb,

		UserRepo:  userRepo,
		RoleRepo:  roleRepo,
		TokenRepo: tokenRepo,
		JobRepo:   jobRepo,
		JobCache:  jobCache,

		PasswordSvc: passwordSvc,
		TokenSvc:    tokenSvc,
		OTPSvc:      otpSvc,
		Mailer:      mailer,
		CasbinSvc:   casbinSvc,

		AuthSvc: authSvc,
		JobSvc:  jobSvc,

		AuthHandlers: handlers.NewAuthHandlers(authSvc),
		JobHandlers:  handlers.NewJobHandlers(jobSvc),
		AuthMW:       middleware.NewAuthMW(tokenSvc),
		CasbinMW:     middleware.NewCasbinMW(casbinSvc.E),
	}, nil
}
