package handler

import (
	"time"

	"bazar-dor-api/internal/middleware"
	"bazar-dor-api/internal/model"
	"bazar-dor-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Services are the collaborators behind the HTTP API.
type Services struct {
	Catalog         service.CatalogService
	Admin           service.AdminService
	Auth            service.AuthService
	DefaultLanguage model.Language
	Location        *time.Location
}

// RegisterRoutes mounts the /api/v1 routes on app.
func RegisterRoutes(app *fiber.App, s Services) {
	catalogHandler := NewCatalogHandler(s.Catalog)
	adminHandler := NewAdminHandler(s.Admin, s.Location)
	authHandler := NewAuthHandler(s.Auth)

	api := app.Group("/api/v1", middleware.Language(s.DefaultLanguage))

	// ============ PUBLIC ROUTES ============
	api.Get("/categories", catalogHandler.GetCategories)
	api.Get("/products", catalogHandler.GetProducts)
	api.Get("/insights", catalogHandler.GetInsights)
	api.Get("/trends", catalogHandler.GetTrends)
	api.Get("/labels", catalogHandler.GetLabels)
	api.Post("/language", SetLanguage)

	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Get("/session", authHandler.Session)
	auth.Post("/logout", middleware.RequireAuth(s.Auth), authHandler.Logout)

	// ============ PROTECTED ROUTES ============
	admin := api.Group("/admin", middleware.RequireAuth(s.Auth))

	admin.Get("/session", adminHandler.GetSession)
	admin.Post("/session/new", adminHandler.BeginAdd)
	admin.Post("/session/edit/:id", adminHandler.BeginEdit)
	admin.Delete("/session", adminHandler.Cancel)

	admin.Get("/products", adminHandler.GetProducts)
	admin.Get("/products/export", adminHandler.Export)
	admin.Post("/products/refresh", adminHandler.Refresh)
	admin.Post("/products", adminHandler.CreateProduct)
	admin.Put("/products/:id", adminHandler.UpdateProduct)
	admin.Delete("/products/:id", adminHandler.DeleteProduct)
}
