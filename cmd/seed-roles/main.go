// Command seed-roles inserts the default role catalog into an existing
// database. Startup does this too; the command exists for migrations and
// fresh environments managed outside the service.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/AbidMulla/off-compus-backend/internal/config"
	"github.com/AbidMulla/off-compus-backend/internal/infrastructure/database"
	"github.com/AbidMulla/off-compus-backend/internal/infrastructure/repositories"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	repo := repositories.NewRoleRepository(db)
	if err := repositories.SeedRoles(context.Background(), repo); err != nil {
		log.Fatalf("seed roles: %v", err)
	}

	log.Println("role catalog seeded")
}
