package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dentalflow/clinic-system/internal/api/handler"
	"github.com/dentalflow/clinic-system/internal/api/middleware"
	"github.com/dentalflow/clinic-system/internal/core/domain"
	"github.com/dentalflow/clinic-system/internal/core/entity"
	"github.com/dentalflow/clinic-system/internal/core/service"
)

// Dependencies carries everything the router needs. Mongo and Redis are nil
// when the memory driver is active; the readiness probe tolerates both.
type Dependencies struct {
	Registry *entity.Registry
	Mongo    *mongo.Database
	Redis    *redis.Client
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("clinic"))

	reg := deps.Registry

	// --- Services and handlers ---
	authService := service.NewAuthService(reg.Users, deps.Log)
	settingsService := service.NewSettingsService(reg.Settings)
	chatService := service.NewChatService(reg.Chat)
	userService := service.NewUserService(reg.Users, deps.Log)

	authHandler := handler.NewAuthHandler(authService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	chatHandler := handler.NewChatHandler(chatService)
	userHandler := handler.NewUserHandler(userService)
	stockHandler := handler.NewStockHandler(reg.InventoryItems)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth ---
	e.POST("/api/auth/login", authHandler.Login)

	// --- Authenticated API (bearer token = user id) ---
	apiGroup := e.Group("/api", middleware.Auth(reg.Users))

	apiGroup.GET("/settings/permissions", settingsHandler.Get)
	apiGroup.POST("/settings/permissions", settingsHandler.Replace,
		middleware.RequireRoles(domain.RoleAdmin))

	chatGroup := apiGroup.Group("/chat", middleware.RequireRoles(domain.StaffRoles()...))
	chatGroup.GET("/messages", chatHandler.List)
	chatGroup.POST("/messages", chatHandler.Post)

	apiGroup.GET("/users", userHandler.List)
	apiGroup.POST("/users", userHandler.Create)
	apiGroup.PUT("/users/:id", userHandler.Update)
	apiGroup.DELETE("/users/:id", userHandler.Delete)

	apiGroup.PUT("/inventory/:id/stock", stockHandler.Update)

	// --- Generic CRUD resources ---
	handler.NewResource("patients", reg.Patients,
		handler.ScopeToOwnPatient()).Register(apiGroup)
	handler.NewResource("appointments", reg.Appointments,
		handler.ScopeToLinkedPatient(reg.Patients, func(a domain.Appointment) string { return a.PatientID })).Register(apiGroup)
	handler.NewResource("invoices", reg.Invoices,
		handler.ScopeToLinkedPatient(reg.Patients, func(i domain.Invoice) string { return i.PatientID })).Register(apiGroup)
	handler.NewResource[domain.Service]("services", reg.Services, nil).Register(apiGroup)
	handler.NewResource[domain.InventoryItem]("inventory", reg.InventoryItems, nil).Register(apiGroup)

	return e
}
