package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bazar-dor-api/internal/config"
	"bazar-dor-api/internal/handler"
	"bazar-dor-api/internal/model"
	"bazar-dor-api/internal/notify"
	"bazar-dor-api/internal/repository"
	"bazar-dor-api/internal/service"
	"bazar-dor-api/internal/ws"
	"bazar-dor-api/pkg/database"
	"bazar-dor-api/pkg/jwt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&model.Product{}, &model.User{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// 3. Repositories and publishers
	productRepo := repository.NewProductRepo(db)
	userRepo := repository.NewUserRepo(db)

	wsHub := ws.NewHub()
	go wsHub.Run()

	publishers := service.Publishers{wsHub}
	var telegram *notify.Telegram
	if cfg.TelegramEnabled() {
		telegram, err = notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChannelID)
		if err != nil {
			log.Printf("Warning: Telegram notifier disabled: %v", err)
		} else {
			publishers = append(publishers, telegram)
		}
	}

	// 4. Services
	tokens := jwt.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens)
	catalogService := service.NewCatalogService(productRepo)
	adminService := service.NewAdminService(productRepo, publishers, cfg.Location)

	// 5. Seed admin user and sample catalog
	seed(cfg, authService, productRepo)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Bazar Dor API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	handler.RegisterRoutes(app, handler.Services{
		Catalog:         catalogService,
		Admin:           adminService,
		Auth:            authService,
		DefaultLanguage: cfg.DefaultLanguage,
		Location:        cfg.Location,
	})

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(wsHub.Serve))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	if telegram != nil {
		telegram.Wait()
	}

	log.Println("Server exited")
}

// seed creates the admin user and, on an empty store, the sample products.
// Failures are logged; the server still starts.
func seed(cfg *config.Config, authService service.AuthService, productRepo repository.ProductRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, err := authService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword, "Administrator")
	if err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else if created {
		log.Printf("✅ Admin user created: %s", cfg.AdminEmail)
	}

	if !cfg.SeedSampleProducts {
		return
	}
	count, err := productRepo.Count(ctx)
	if err != nil {
		log.Printf("Warning: Failed to count products: %v", err)
		return
	}
	if count > 0 {
		return
	}
	samples := model.SampleProducts(time.Now().In(cfg.Location))
	for i := range samples {
		samples[i].CreatedBy = "system"
		samples[i].UpdatedBy = "system"
	}
	if err := productRepo.CreateMany(ctx, samples); err != nil {
		log.Printf("Warning: Failed to seed sample products: %v", err)
		return
	}
	log.Printf("✅ Seeded %d sample products", len(samples))
}
