// Package server assembles the echo application and runs it.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"rental-ops/internal/config"
	"rental-ops/internal/handlers"
	"rental-ops/internal/logging"
	"rental-ops/internal/middleware"
	"rental-ops/internal/models"
	"rental-ops/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	echo       *echo.Echo
	cfg        *config.Config
	container  *Container
	otpLimiter *middleware.IPRateLimiter
	logger     *slog.Logger
	activity   services.ActivityGeneratorInterface
}

// New builds the echo application. Metrics are registered with and served from registry.
func New(cfg *config.Config, db *gorm.DB, registry *prometheus.Registry, logger *slog.Logger) *Server {
	container := NewContainer(cfg, db, registry, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(container.Metrics)
	e.Validator = handlers.NewValidator()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	s := &Server{
		echo:       e,
		cfg:        cfg,
		container:  container,
		otpLimiter: middleware.NewIPRateLimiter(cfg.Security.RateLimitPerSecond, 0),
		logger:     logger,
	}
	if cfg.IsDevelopment() {
		s.activity = services.NewActivityGenerator(0)
	}

	e.Use(middleware.RequestID())
	e.Use(logging.RequestLogger(logger))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
		ExposeHeaders: []string{
			echo.HeaderContentDisposition,
			middleware.TraceIDHeader,
		},
	}))
	e.Use(middleware.RequestTimeout(cfg.Server.RequestTimeout))

	health := handlers.NewHealthCheckHandler(db)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	s.registerRoutes()
	return s
}

// Echo exposes the router, mainly for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) registerRoutes() {
	c := s.container
	requireAuth := middleware.RequireAuth(c.TokenService)
	adminOnly := middleware.RequireAdmin()
	adminOrOwner := middleware.RequireRole(models.RoleAdmin, models.RoleOwner)
	adminOrCleaner := middleware.RequireRole(models.RoleAdmin, models.RoleCleaner)
	cleanerOnly := middleware.RequireRole(models.RoleCleaner)

	authHandler := handlers.NewAuthHandler(c.AuthService)
	propertyHandler := handlers.NewPropertyHandler(c.PropertyService)
	reservationHandler := handlers.NewReservationHandler(c.ReservationService)
	expenseHandler := handlers.NewExpenseHandler(c.ExpenseService)
	statementHandler := handlers.NewStatementHandler(c.StatementService, c.DocumentService)
	taskHandler := handlers.NewTaskHandler(c.TaskService)
	statsHandler := handlers.NewStatsHandler(c.StatsService)

	api := s.echo.Group("/api/v1")

	auth := api.Group("/auth")
	otp := auth.Group("/otp", s.otpLimiter.Middleware())
	otp.POST("/request", authHandler.RequestOTP)
	otp.POST("/verify", authHandler.VerifyOTP)
	auth.GET("/me", authHandler.Me, requireAuth)

	properties := api.Group("/properties", requireAuth)
	properties.GET("", propertyHandler.ListProperties, adminOrOwner)
	properties.POST("", propertyHandler.CreateProperty, adminOnly)
	properties.POST("/:id/units", propertyHandler.CreateUnit, adminOnly)

	reservations := api.Group("/reservations", requireAuth, adminOnly)
	reservations.GET("", reservationHandler.ListReservations)
	reservations.POST("", reservationHandler.CreateReservation)

	expenses := api.Group("/expenses", requireAuth, adminOnly)
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.POST("", expenseHandler.CreateExpense)

	statements := api.Group("/statements", requireAuth)
	statements.GET("", statementHandler.ListStatements, adminOrOwner)
	statements.POST("", statementHandler.GenerateStatement, adminOnly)
	statements.GET("/:id", statementHandler.GetStatement, adminOrOwner)
	statements.POST("/:id/publish", statementHandler.PublishStatement, adminOnly)
	statements.PATCH("/:id/notes", statementHandler.UpdateNotes, adminOnly)
	statements.GET("/:id/pdf", statementHandler.DownloadPDF, adminOrOwner)
	statements.GET("/:id/xlsx", statementHandler.DownloadXLSX, adminOrOwner)

	tasks := api.Group("/tasks", requireAuth)
	tasks.GET("", taskHandler.ListTasks)
	tasks.POST("", taskHandler.CreateTask, adminOnly)
	tasks.GET("/:id", taskHandler.GetTask)
	tasks.PATCH("/:id", taskHandler.UpdateTask, adminOrCleaner)

	api.GET("/cleaner/tasks", taskHandler.MySchedule, requireAuth, cleanerOnly)
	api.GET("/stats", statsHandler.GetStats, requireAuth, adminOrOwner)

	if s.activity != nil {
		devHandler := handlers.NewDevHandler(c.Properties, c.Reservations, c.Expenses, s.activity)
		dev := api.Group("/dev", requireAuth, adminOnly)
		dev.POST("/properties/:id/generate-activity", devHandler.GenerateActivity)
		s.logger.Warn("development endpoints enabled", "prefix", "/api/v1/dev")
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	limiterCtx, stopLimiter := context.WithCancel(ctx)
	defer stopLimiter()
	go s.otpLimiter.Run(limiterCtx)

	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", addr, "environment", s.cfg.Server.Environment)
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
