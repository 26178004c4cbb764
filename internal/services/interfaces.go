package services

import (
	"context"
	"time"

	"rental-ops/internal/dto"
	"rental-ops/internal/models"

	"github.com/google/uuid"
)

// PeriodAggregatorInterface computes revenue and expense totals for one property and month
type PeriodAggregatorInterface interface {
	Aggregate(ctx context.Context, propertyID uuid.UUID, period models.StatementPeriod) (*models.PeriodTotals, error)
}

// StatementServiceInterface defines owner statement lifecycle operations
type StatementServiceInterface interface {
	Generate(ctx context.Context, caller models.Caller, req *dto.GenerateStatementRequest) (*models.OwnerStatement, error)
	Publish(ctx context.Context, caller models.Caller, id uuid.UUID) (*models.OwnerStatement, error)
	List(ctx context.Context, caller models.Caller, filters models.StatementFilters) ([]models.OwnerStatement, error)
	Get(ctx context.Context, caller models.Caller, id uuid.UUID) (*models.OwnerStatement, error)
	UpdateNotes(ctx context.Context, caller models.Caller, id uuid.UUID, notes string) (*models.OwnerStatement, error)
}

// StatementDocumentServiceInterface renders a statement into a downloadable document
type StatementDocumentServiceInterface interface {
	Render(ctx context.Context, caller models.Caller, id uuid.UUID, format string) (*models.RenderedDocument, error)
}

// PropertyServiceInterface defines property and unit operations
type PropertyServiceInterface interface {
	Create(ctx context.Context, caller models.Caller, req *dto.CreatePropertyRequest) (*models.Property, error)
	Get(ctx context.Context, caller models.Caller, id uuid.UUID) (*models.Property, error)
	List(ctx context.Context, caller models.Caller, activeOnly bool) ([]models.Property, error)
	AddUnit(ctx context.Context, caller models.Caller, propertyID uuid.UUID, req *dto.CreateUnitRequest) (*models.PropertyUnit, error)
}

// ReservationServiceInterface defines reservation operations
type ReservationServiceInterface interface {
	Create(ctx context.Context, caller models.Caller, req *dto.CreateReservationRequest) (*models.Reservation, error)
	List(ctx context.Context, caller models.Caller, filters models.ReservationFilters) ([]models.Reservation, int64, error)
}

// ExpenseServiceInterface defines expense operations
type ExpenseServiceInterface interface {
	Create(ctx context.Context, caller models.Caller, req *dto.CreateExpenseRequest) (*models.Expense, error)
	List(ctx context.Context, caller models.Caller, filters models.ExpenseFilters) ([]models.Expense, int64, error)
}

// TaskServiceInterface defines cleaning task scheduling and progress operations
type TaskServiceInterface interface {
	Create(ctx context.Context, caller models.Caller, req *dto.CreateTaskRequest) (*models.Task, error)
	List(ctx context.Context, caller models.Caller, filters models.TaskFilters) ([]models.Task, int64, error)
	Schedule(ctx context.Context, caller models.Caller, window string) ([]models.Task, error)
	Get(ctx context.Context, caller models.Caller, id uuid.UUID) (*models.Task, error)
	UpdateProgress(ctx context.Context, caller models.Caller, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
}

// StatsServiceInterface builds revenue and expense summaries across properties
type StatsServiceInterface interface {
	Summary(ctx context.Context, caller models.Caller, r models.StatsRange, ownerID *uuid.UUID) (*models.PortfolioStats, error)
}

// AuthServiceInterface defines OTP login operations
type AuthServiceInterface interface {
	RequestOTP(ctx context.Context, req *dto.RequestOTPRequest, ipAddress, userAgent string) (*dto.OTPRequestedResponse, error)
	VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	EnsureAdmin(ctx context.Context, email, firstName, lastName string) (*models.User, bool, error)
}

// CodeHasherInterface hashes and checks one-time codes
type CodeHasherInterface interface {
	GenerateCode() (string, error)
	HashCode(code string) (string, error)
	CompareCode(hash, code string) bool
}

// MailerInterface delivers login codes
type MailerInterface interface {
	SendLoginCode(ctx context.Context, email, code string, expiresAt time.Time) error
}

// TokenServiceInterface defines JWT access token operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// AuditServiceInterface persists audit trail entries
type AuditServiceInterface interface {
	Record(ctx context.Context, caller models.Caller, action, entityType, entityID string, oldValues, newValues models.JSONBMap) error
	ListForEntity(ctx context.Context, entityType, entityID string, offset, limit int) ([]*models.AuditLog, int64, error)
	Cleanup(ctx context.Context, retention time.Duration) (int64, error)
}

// AuditLoggerInterface emits structured statement lifecycle events to the application log
type AuditLoggerInterface interface {
	LogStatementGenerated(ctx context.Context, statement *models.OwnerStatement, durationMs int64)
	LogStatementGenerationFailed(ctx context.Context, propertyID uuid.UUID, period models.StatementPeriod, reason string)
	LogStatementPublished(ctx context.Context, statement *models.OwnerStatement, alreadyPublished bool)
	LogStatementRendered(ctx context.Context, statementID uuid.UUID, format string, sizeBytes int, durationMs int64)
	LogStatementAccessDenied(ctx context.Context, statementID uuid.UUID, caller models.Caller)
}

// MetricsRecorderInterface defines the contract for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
