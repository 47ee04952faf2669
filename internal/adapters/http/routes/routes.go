package routes

import (
	"time"

	"paasta-portal/internal/adapters/http/handlers"
	"paasta-portal/internal/adapters/http/middleware"
	"paasta-portal/internal/adapters/persistence/repositories"
	"paasta-portal/internal/config"
	"paasta-portal/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	appRepo := repositories.NewApplicationRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	appService := services.NewApplicationService(appRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(userService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	appHandler := handlers.NewApplicationHandler(appService)
	adminHandler := handlers.NewAdminHandler(appService)
	statusHandler := handlers.NewStatusHandler()

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Auth routes (stricter rate limit on login, responses never cached)
	auth := apiV1.Group("/auth", middleware.NoCacheHeaders())
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Post("/verify-token", authHandler.VerifyToken)

	// User routes
	users := apiV1.Group("/users")
	users.Post("/", middleware.AuthRateLimiter(), userHandler.Register)
	users.Post("/admin", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), userHandler.CreateAdmin)
	users.Get("/", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), userHandler.List)
	users.Get("/:employeeId", middleware.AuthMiddleware(cfg), userHandler.GetByEmployeeID)

	// Application routes (authenticated)
	apps := apiV1.Group("/applications", middleware.AuthMiddleware(cfg))
	apps.Post("/", appHandler.Create)
	apps.Get("/employee/:employeeId", appHandler.ListByEmployee)
	apps.Get("/:id", appHandler.Get)
	apps.Patch("/:id", appHandler.UpdateContent)
	apps.Delete("/:id", appHandler.Delete)

	// Legacy card-style submission shape
	apiV1.Post("/submit-card", middleware.AuthMiddleware(cfg), appHandler.SubmitCard)

	// Admin routes (JWT + ADMIN role)
	admin := apiV1.Group("/admin", middleware.AuthMiddleware(cfg), middleware.AdminOnly())
	admin.Get("/applications", adminHandler.ListAll)
	admin.Get("/applications/status/:status", adminHandler.ListByStatus)
	admin.Get("/applications/:id", adminHandler.Get)
	admin.Put("/applications/:id/status", adminHandler.UpdateStatus)

	// Status catalog is static, cache it
	apiV1.Get("/status/list", middleware.CacheControl(time.Hour), statusHandler.List)
}
