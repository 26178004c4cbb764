package repositories

import (
	"context"
	"time"

	"rental-ops/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
	ListUsers(ctx context.Context, role string, offset, limit int) ([]*models.User, int64, error)
}

// PropertyRepositoryInterface defines the contract for properties and their units
type PropertyRepositoryInterface interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	List(ctx context.Context, filters models.PropertyFilters) ([]models.Property, error)
	CreateUnit(ctx context.Context, unit *models.PropertyUnit) error
	ListUnits(ctx context.Context, propertyID uuid.UUID) ([]models.PropertyUnit, error)
}

// ReservationRepositoryInterface defines the contract for reservation storage and window queries.
// Window bounds are [from, to) on check_out; a reservation belongs to a property directly or through one of its units.
type ReservationRepositoryInterface interface {
	Create(ctx context.Context, reservation *models.Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	List(ctx context.Context, filters models.ReservationFilters) ([]models.Reservation, int64, error)
	SumRevenue(ctx context.Context, propertyID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
	ListLines(ctx context.Context, propertyID uuid.UUID, from, to time.Time) ([]models.ReservationLine, error)
}

// ExpenseRepositoryInterface defines the contract for expense storage and window queries.
// Window bounds are [from, to) on expense_date.
type ExpenseRepositoryInterface interface {
	Create(ctx context.Context, expense *models.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error)
	List(ctx context.Context, filters models.ExpenseFilters) ([]models.Expense, int64, error)
	SumAmount(ctx context.Context, propertyID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
	ListLines(ctx context.Context, propertyID uuid.UUID, from, to time.Time) ([]models.ExpenseLine, error)
}

// StatementRepositoryInterface defines the contract for owner statement persistence
type StatementRepositoryInterface interface {
	Create(ctx context.Context, statement *models.OwnerStatement) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.OwnerStatement, error)
	ExistsForPeriod(ctx context.Context, propertyID uuid.UUID, month time.Time) (bool, error)
	List(ctx context.Context, filters models.StatementFilters) ([]models.OwnerStatement, error)
	MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error
}

// TaskRepositoryInterface defines the contract for cleaning and upkeep tasks.
// Window bounds are [from, to) on scheduled_date.
type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	List(ctx context.Context, filters models.TaskFilters) ([]models.Task, int64, error)
	UpdateProgress(ctx context.Context, task *models.Task) error
	CountOpen(ctx context.Context, propertyIDs []uuid.UUID) (int64, error)
	CountScheduled(ctx context.Context, propertyIDs []uuid.UUID, from, to time.Time) (int64, error)
}

// OTPCodeRepositoryInterface defines the contract for one-time login codes
type OTPCodeRepositoryInterface interface {
	Create(ctx context.Context, code *models.OTPCode) error
	GetLatestActive(ctx context.Context, email string, now time.Time) (*models.OTPCode, error)
	InvalidateActive(ctx context.Context, email string, at time.Time) error
	IncrementAttempts(ctx context.Context, id uuid.UUID) error
	MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.AuditLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AuditLog, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByAction(ctx context.Context, action string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByEntity(ctx context.Context, entityType, entityID string, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(ctx context.Context, duration time.Duration) (int64, error)
}
