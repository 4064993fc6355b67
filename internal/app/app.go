package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/AbidMulla/off-compus-backend/internal/config"
	httpx "github.com/AbidMulla/off-compus-backend/internal/http"
	"github.com/AbidMulla/off-compus-backend/internal/logger"
)

// Run boots the service: config, logger, dependency graph, router.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Development)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(context.Background(), cfg, log)
	if err != nil {
		return err
	}

	r := httpx.BuildRouter(c.AuthHandlers, c.JobHandlers, c.AuthMW, c.CasbinMW, cfg.CORSOrigins)

	log.Infow("server starting", "port", cfg.Port)
	return r.Run(":" + cfg.Port)
}
