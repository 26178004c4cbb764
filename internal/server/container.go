package server

import (
	"log/slog"

	"rental-ops/internal/config"
	"rental-ops/internal/documents"
	"rental-ops/internal/repositories"
	"rental-ops/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Container holds the repositories and services shared by the HTTP server and the CLI.
type Container struct {
	Users        repositories.UserRepositoryInterface
	Properties   repositories.PropertyRepositoryInterface
	Reservations repositories.ReservationRepositoryInterface
	Expenses     repositories.ExpenseRepositoryInterface
	Tasks        repositories.TaskRepositoryInterface

	Metrics            *services.PrometheusMetrics
	TokenService       services.TokenServiceInterface
	AuthService        services.AuthServiceInterface
	PropertyService    services.PropertyServiceInterface
	ReservationService services.ReservationServiceInterface
	ExpenseService     services.ExpenseServiceInterface
	StatementService   services.StatementServiceInterface
	DocumentService    services.StatementDocumentServiceInterface
	TaskService        services.TaskServiceInterface
	StatsService       services.StatsServiceInterface
}

// NewContainer wires every service against db. Metrics are registered with reg.
func NewContainer(cfg *config.Config, db *gorm.DB, reg prometheus.Registerer, logger *slog.Logger) *Container {
	userRepo := repositories.NewUserRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)
	expenseRepo := repositories.NewExpenseRepository(db)
	statementRepo := repositories.NewStatementRepository(db)
	otpRepo := repositories.NewOTPCodeRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)
	taskRepo := repositories.NewTaskRepository(db)

	metrics := services.NewPrometheusMetrics(reg)
	auditService := services.NewAuditService(auditRepo)
	auditLogger := services.NewAuditLogger(logger)
	tokenService := services.NewTokenService(&cfg.JWT)

	authService := services.NewAuthService(
		userRepo,
		otpRepo,
		services.NewCodeHasher(cfg.Security.BCryptCost),
		services.NewMailer(cfg.OTP, cfg.Statement.Branding.CompanyName, logger),
		tokenService,
		auditService,
		metrics,
		cfg.OTP,
		logger,
	)

	aggregator := services.NewPeriodAggregator(propertyRepo, reservationRepo, expenseRepo)
	statementService := services.NewStatementService(
		statementRepo,
		propertyRepo,
		aggregator,
		auditService,
		auditLogger,
		metrics,
		cfg.Statement.ManagementFeePercent,
		logger,
	)

	documentService := services.NewStatementDocumentService(
		statementService,
		propertyRepo,
		reservationRepo,
		expenseRepo,
		documents.NewRenderers(cfg.Statement.Branding),
		auditLogger,
		metrics,
		logger,
	)

	return &Container{
		Users:        userRepo,
		Properties:   propertyRepo,
		Reservations: reservationRepo,
		Expenses:     expenseRepo,
		Tasks:        taskRepo,

		Metrics:            metrics,
		TokenService:       tokenService,
		AuthService:        authService,
		PropertyService:    services.NewPropertyService(propertyRepo, userRepo, auditService, logger),
		ReservationService: services.NewReservationService(reservationRepo, propertyRepo, auditService, logger),
		ExpenseService:     services.NewExpenseService(expenseRepo, propertyRepo, auditService, logger),
		StatementService:   statementService,
		DocumentService:    documentService,
		TaskService:        services.NewTaskService(taskRepo, propertyRepo, reservationRepo, userRepo, auditService, logger),
		StatsService:       services.NewStatsService(propertyRepo, taskRepo, aggregator, cfg.Statement.ManagementFeePercent),
	}
}
