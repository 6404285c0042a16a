package router

import (
	"hrm-web/internal/config"
	"hrm-web/internal/handler"
	"hrm-web/internal/middleware"
	"hrm-web/internal/repository"
	"hrm-web/internal/service"
	"hrm-web/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

func SetupAPIRoutes(
	router fiber.Router,
	db *sqlx.DB,
	redis *redis.Client,
	cfg *config.Config,
) {
	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)

	// Initialize services
	logger := utils.GetLogger()
	authService := service.NewAuthService(userRepo, cfg)
	excelService := service.NewExcelService()
	employeeService := service.NewEmployeeService(employeeRepo, redis, cfg.StatsCacheTTL, logger)
	importService := service.NewImportService(employeeRepo, logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService, excelService, cfg)
	uploadHandler := handler.NewUploadHandler(importService, excelService, cfg)

	// Public routes
	auth := router.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Post("/logout", authHandler.Logout)

	// Protected routes
	protected := router.Group("", middleware.AuthMiddleware(cfg))

	protected.Get("/auth/me", authHandler.Me)

	// Employee routes
	employees := protected.Group("/employees")
	employees.Get("/", employeeHandler.GetEmployees)
	employees.Get("/stats", employeeHandler.GetStats)
	employees.Get("/export", employeeHandler.ExportEmployees)
	employees.Get("/template", employeeHandler.DownloadTemplate)
	employees.Get("/:id", employeeHandler.GetEmployee)
	employees.Post("/", employeeHandler.CreateEmployee)
	employees.Put("/:id", employeeHandler.UpdateEmployee)
	employees.Patch("/:id", employeeHandler.UpdateEmployee)
	employees.Delete("/:id", employeeHandler.DeleteEmployee)

	// Bulk import routes
	protected.Post("/upload", uploadHandler.Upload)
	protected.Get("/upload/error-report/:filename", uploadHandler.DownloadErrorReport)
}
