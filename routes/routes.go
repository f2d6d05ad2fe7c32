package routes

import (
	"context"
	"errors"

	"logistics-requests/config"
	"logistics-requests/constants"
	"logistics-requests/controllers/analytics"
	"logistics-requests/controllers/auth"
	"logistics-requests/controllers/public"
	"logistics-requests/controllers/server"
	"logistics-requests/controllers/shipment"
	"logistics-requests/controllers/user"
	"logistics-requests/database"
	"logistics-requests/errs"
	"logistics-requests/logger"
	"logistics-requests/middleware"
	analyticsService "logistics-requests/services/analytics"
	authService "logistics-requests/services/auth"
	"logistics-requests/services/numbering"
	shipmentService "logistics-requests/services/shipment"
	userService "logistics-requests/services/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Handlers is everything SetupRoutes mounts.
type Handlers struct {
	Tokens    *authService.TokenManager
	Sessions  middleware.SessionStore
	AuditLog  *logger.AsyncLogger
	Auth      *auth.AuthController
	Shipments *shipment.ShipmentController
	Public    *public.PublicController
	Users     *user.UserController
	Analytics *analytics.AnalyticsController
	Server    *server.ServerController
}

// NewHandlers wires the gorm repositories into services and controllers.
func NewHandlers(db *gorm.DB, cfg *config.Config, notifier shipmentService.Notifier, auditLog *logger.AsyncLogger) (*Handlers, error) {
	userRepo := userService.NewGormRepository(db)
	shipmentRepo := shipmentService.NewGormRepository(db)
	users := userService.NewService(userRepo, cfg.SystemOwnerUsername)
	tokens := authService.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	if _, err := users.SystemOwner(context.Background()); err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			return nil, err
		}
		logger.Warning("system owner " + cfg.SystemOwnerUsername + " not found, public requests will have no owner until `seed` runs")
	}

	shipments := shipmentService.NewService(shipmentService.Deps{
		Repo:     shipmentRepo,
		Tx:       database.NewTransactor(db),
		Numbers:  numbering.NewAllocator(db),
		Owners:   users,
		Notifier: notifier,
	})

	return &Handlers{
		Tokens:    tokens,
		Sessions:  userRepo,
		AuditLog:  auditLog,
		Auth:      auth.NewAuthController(authService.NewService(userRepo, tokens), cfg.IsProduction()),
		Shipments: shipment.NewShipmentController(shipments),
		Public:    public.NewPublicController(shipments),
		Users:     user.NewUserController(users),
		Analytics: analytics.NewAnalyticsController(analyticsService.NewService(shipmentRepo)),
		Server: server.NewServerController(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}),
	}, nil
}

func SetupRoutes(app *fiber.App, h *Handlers) {
	app.Get("/health", h.Server.Health)

	api := app.Group("/api")
	if h.AuditLog != nil {
		api.Use(middleware.AuditLog(h.AuditLog))
	}
	authenticated := middleware.IsAuthenticated(h.Tokens, h.Sessions)
	managerOnly := middleware.RequireRole(constants.RoleManager)

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api.Post("/auth/login", h.Auth.Login)
	api.Post("/auth/register", h.Auth.Register)
	api.Post("/auth/logout", h.Auth.Logout)

	api.Post("/public/shipment-requests", h.Public.Store)
	api.Get("/shipment-requests/public/:number", h.Public.TrackByNumber)
	api.Post("/track-request", h.Public.Track)

	/*=============================================================================
	| Protected Routes
	===============================================================================*/
	api.Get("/auth/me", authenticated, h.Auth.Me)

	/*=============================================================================
	| Shipment Request Routes
	===============================================================================*/
	requests := api.Group("/shipment-requests", authenticated)
	requests.Get("/", h.Shipments.Index)
	requests.Post("/", h.Shipments.Store)
	requests.Get("/stats", h.Shipments.Stats)
	requests.Get("/:id", h.Shipments.Show)
	requests.Patch("/:id", h.Shipments.Update)
	requests.Put("/:id", h.Shipments.Update)
	requests.Delete("/:id", managerOnly, h.Shipments.Destroy)
	requests.Get("/:id/history", h.Shipments.History)

	/*=============================================================================
	| Manager Routes
	===============================================================================*/
	api.Get("/users", authenticated, managerOnly, h.Users.Index)
	api.Put("/users/:id/role", authenticated, managerOnly, h.Users.UpdateRole)
	api.Get("/analytics", authenticated, managerOnly, h.Analytics.Analytics)
	api.Get("/reports", authenticated, managerOnly, h.Analytics.Reports)
}
