package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/AbidMulla/off-compus-backend/internal/app"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
