package main

import (
	"context"
	"flag"
	"log"
	"time"

	"bazar-dor-api/internal/config"
	"bazar-dor-api/internal/repository"
	"bazar-dor-api/internal/service"
	"bazar-dor-api/pkg/database"
	"bazar-dor-api/pkg/jwt"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	email := flag.String("email", cfg.AdminEmail, "admin email")
	password := flag.String("password", cfg.AdminPassword, "new password (min 6 characters)")
	flag.Parse()

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	// 3. Reset through the auth service so existing sessions are revoked
	authService := service.NewAuthService(repository.NewUserRepo(db), jwt.NewManager(cfg.JWTSecret, cfg.TokenTTL))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := authService.ResetPassword(ctx, *email, *password); err != nil {
		log.Fatalf("❌ Failed to reset password for %s: %v", *email, err)
	}

	log.Printf("✅ Success! Password for %s has been reset; existing sessions were signed out.", *email)
}
