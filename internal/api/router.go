package api

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zamreal/property-system/internal/api/handler"
	"github.com/zamreal/property-system/internal/api/middleware"
	"github.com/zamreal/property-system/internal/core/domain"
	"github.com/zamreal/property-system/internal/core/ledger"
	"github.com/zamreal/property-system/internal/core/ports"
	"github.com/zamreal/property-system/internal/core/service"
	mongodb "github.com/zamreal/property-system/internal/infrastructure/db/mongo"
	redisdb "github.com/zamreal/property-system/internal/infrastructure/db/redis"
	"github.com/zamreal/property-system/internal/infrastructure/directory"
	httphandlers "github.com/zamreal/property-system/internal/infrastructure/http/handlers"
	"github.com/zamreal/property-system/internal/infrastructure/queue"
	"github.com/zamreal/property-system/internal/pkg/config"
)

// NewRouter builds the Echo instance with every dependency wired: the
// seeded ledger, the credential directories, the core services, the
// reminder dispatcher, and all routes. db and rdb may be nil when the
// corresponding backend is unconfigured; the core degrades accordingly.
func NewRouter(ctx context.Context, cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Core ---
	store := ledger.New()
	clock := ports.SystemClock()

	var credStore ports.CredentialStore
	if db != nil {
		credStore = mongodb.NewDirectoryRepository(db)
	}
	authService := service.NewAuthService(credStore, directory.Demo(), cfg.JWTSecret, 24*time.Hour, log)

	analytics := service.NewAnalyticsService(store, service.PortfolioFigures{
		TotalUnits: cfg.Portfolio.TotalUnits,
		Occupied:   cfg.Portfolio.Occupied,
		ArrearsZMW: cfg.Portfolio.ArrearsZMW,
	}, clock)

	mutations := service.NewMutationService(store, clock, cfg.MutationDelay(), log)

	// --- Reminder dispatch ---
	var dedup queue.Deduper
	if rdb != nil {
		dedup = redisdb.NewDispatchDedup(rdb)
	}
	dispatcher := queue.NewDispatcher(0, queue.NewLoggingNotifier(log), dedup, log)
	dispatcher.Start(ctx)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	dashboardHandler := handler.NewDashboardHandler(analytics)
	ledgerHandler := handler.NewLedgerHandler(store, analytics, mutations, dispatcher)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)

	// --- Authenticated routes ---
	authed := e.Group("", middleware.Auth(cfg.JWTSecret))

	// Reads: any authenticated role.
	reads := authed.Group("", middleware.RBAC())
	reads.GET("/dashboard/summary", dashboardHandler.Summary)
	reads.GET("/dashboard/overview", dashboardHandler.Overview)
	reads.GET("/leases", ledgerHandler.ListLeases)
	reads.GET("/leases/review-radar", ledgerHandler.ReviewRadar)
	reads.GET("/payments", ledgerHandler.ListPayments)
	reads.GET("/reminders", ledgerHandler.ListReminders)
	reads.GET("/maintenance", ledgerHandler.ListTickets)
	reads.GET("/maintenance/queue", ledgerHandler.TicketQueue)

	// Cashflow writes: admin and manager only. The mutation service checks
	// again; the middleware just fails fast.
	cashflow := authed.Group("", middleware.RBAC(domain.RoleAdmin, domain.RoleManager))
	cashflow.POST("/payments", ledgerHandler.CreatePayment)
	cashflow.POST("/reminders", ledgerHandler.CreateReminder)

	// Fault reports: any authenticated role.
	authed.POST("/maintenance", ledgerHandler.CreateTicket, middleware.RBAC())

	// --- Observability (no auth required) ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
