package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"rental-ops/internal/dto"
	"rental-ops/internal/models"
	"rental-ops/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	GenerationStatusSuccess   = "success"
	GenerationStatusDuplicate = "duplicate"
	GenerationStatusFailed    = "failed"
)

var hundred = decimal.NewFromInt(100)

// CalculateManagementFee returns revenue × percent / 100 rounded half away from zero to cents.
func CalculateManagementFee(revenue, percent decimal.Decimal) decimal.Decimal {
	return revenue.Mul(percent).Div(hundred).Round(2)
}

type StatementService struct {
	statementRepo repositories.StatementRepositoryInterface
	propertyRepo  repositories.PropertyRepositoryInterface
	aggregator    PeriodAggregatorInterface
	auditService  AuditServiceInterface
	auditLogger   AuditLoggerInterface
	metrics       MetricsRecorderInterface
	feePercent    decimal.Decimal
	logger        *slog.Logger
	now           func() time.Time
}

func NewStatementService(
	statementRepo repositories.StatementRepositoryInterface,
	propertyRepo repositories.PropertyRepositoryInterface,
	aggregator PeriodAggregatorInterface,
	auditService AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	feePercent decimal.Decimal,
	logger *slog.Logger,
) StatementServiceInterface {
	return &StatementService{
		statementRepo: statementRepo,
		propertyRepo:  propertyRepo,
		aggregator:    aggregator,
		auditService:  auditService,
		auditLogger:   auditLogger,
		metrics:       metrics,
		feePercent:    feePercent,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Generate computes and stores the statement for one property and month. The row is inserted only
// after both totals are known; a concurrent duplicate loses at the unique index.
func (s *StatementService) Generate(ctx context.Context, caller models.Caller, req *dto.GenerateStatementRequest) (*models.OwnerStatement, error) {
	start := time.Now()

	if err := RequireAdmin(caller); err != nil {
		return nil, err
	}

	propertyID, period, err := parseGenerateRequest(req)
	if err != nil {
		return nil, err
	}

	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, s.generationFailed(ctx, propertyID, period, storageError("load property", err))
	}

	exists, err := s.statementRepo.ExistsForPeriod(ctx, propertyID, period.FirstDay())
	if err != nil {
		return nil, s.generationFailed(ctx, propertyID, period, storageError("check existing statement", err))
	}
	if exists {
		return nil, s.duplicate(ctx, propertyID, period)
	}

	totals, err := s.aggregator.Aggregate(ctx, propertyID, period)
	if err != nil {
		if errors.Is(err, ErrPropertyNotFound) {
			return nil, err
		}
		return nil, s.generationFailed(ctx, propertyID, period, err)
	}

	statement := &models.OwnerStatement{
		PropertyID:     propertyID,
		OwnerID:        property.OwnerID,
		StatementMonth: period.FirstDay(),
		TotalRevenue:   totals.TotalRevenue,
		TotalExpenses:  totals.TotalExpenses,
		NetIncome:      totals.NetIncome(),
		ManagementFee:  CalculateManagementFee(totals.TotalRevenue, s.feePercent),
	}

	if err := s.statementRepo.Create(ctx, statement); err != nil {
		if errors.Is(err, repositories.ErrDuplicateStatement) {
			return nil, s.duplicate(ctx, propertyID, period)
		}
		return nil, s.generationFailed(ctx, propertyID, period, storageError("create statement", err))
	}
	statement.Property = property

	s.audit(ctx, caller, models.AuditActionCreate, statement.ID, nil, statementSnapshot(statement))

	duration := time.Since(start)
	s.metrics.IncrementCounter("statement_generated", map[string]string{"status": GenerationStatusSuccess})
	s.metrics.RecordProcessingTime("statement_generation", duration)
	s.metrics.RecordGauge("statement_net_income", statement.NetIncome.InexactFloat64(), nil)
	s.auditLogger.LogStatementGenerated(ctx, statement, duration.Milliseconds())

	s.logger.InfoContext(ctx, "statement generated",
		"statement_id", statement.ID,
		"property_id", propertyID,
		"period", period.String(),
		"total_revenue", statement.TotalRevenue.StringFixed(2),
		"total_expenses", statement.TotalExpenses.StringFixed(2),
		"management_fee", statement.ManagementFee.StringFixed(2))

	return statement, nil
}

// Publish makes a statement visible to its owner. Publishing twice is a no-op that keeps the
// original published_at.
func (s *StatementService) Publish(ctx context.Context, caller models.Caller, id uuid.UUID) (*models.OwnerStatement, error) {
	if err := RequireAdmin(caller); err != nil {
		return nil, err
	}

	statement, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if statement.IsPublished {
		s.auditLogger.LogStatementPublished(ctx, statement, true)
		return statement, nil
	}

	now := s.now()
	changed, err := s.statementRepo.MarkPublished(ctx, id, now)
	if err != nil {
		return nil, storageError("publish statement", err)
	}
	if !changed {
		// another request published it between the read and the update
		statement, err = s.load(ctx, id)
		if err != nil {
			return nil, err
		}
		s.auditLogger.LogStatementPublished(ctx, statement, true)
		return statement, nil
	}

	statement.IsPublished = true
	statement.PublishedAt = &now
	statement.UpdatedAt = now

	s.audit(ctx, caller, models.AuditActionPublish, statement.ID,
		models.JSONBMap{"is_published": false},
		models.JSONBMap{"is_published": true, "published_at": now.Format(time.RFC3339)})
	s.metrics.IncrementCounter("statement_published", nil)
	s.auditLogger.LogStatementPublished(ctx, statement, false)

	return statement, nil
}

func (s *StatementService) List(ctx context.Context, caller models.Caller, filters models.StatementFilters) ([]models.OwnerStatement, error) {
	scoped, err := ScopeStatementFilters(caller, filters)
	if err != nil {
		return nil, err
	}

	statements, err := s.statementRepo.List(ctx, scoped)
	if err != nil {
		return nil, storageError("list statements", err)
	}
	return statements, nil
}

// Get returns one statement if caller may see it. Owners get ErrStatementNotFound for statements
// they may not see.
func (s *StatementService) Get(ctx context.Context, caller models.Caller, id uuid.UUID) (*models.OwnerStatement, error) {
	if !caller.IsAdmin() && !caller.IsOwner() {
		return nil, ErrForbidden
	}

	statement, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	ownerID, err := s.liveOwner(ctx, statement)
	if err != nil {
		return nil, err
	}

	if err := AuthorizeStatementRead(caller, statement, ownerID); err != nil {
		s.auditLogger.LogStatementAccessDenied(ctx, statement.ID, caller)
		return nil, concealDenied(err)
	}
	return statement, nil
}

func (s *StatementService) UpdateNotes(ctx context.Context, caller models.Caller, id uuid.UUID, notes string) (*models.OwnerStatement, error) {
	if err := RequireAdmin(caller); err != nil {
		return nil, err
	}

	statement, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	notes = strings.TrimSpace(notes)
	if err := s.statementRepo.UpdateNotes(ctx, id, notes); err != nil {
		if errors.Is(err, repositories.ErrStatementNotFound) {
			return nil, ErrStatementNotFound
		}
		return nil, storageError("update statement notes", err)
	}

	s.audit(ctx, caller, models.AuditActionUpdate, id,
		models.JSONBMap{"notes": statement.Notes},
		models.JSONBMap{"notes": notes})

	statement.Notes = notes
	statement.UpdatedAt = s.now()
	return statement, nil
}

func (s *StatementService) load(ctx context.Context, id uuid.UUID) (*models.OwnerStatement, error) {
	statement, err := s.statementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStatementNotFound) {
			return nil, ErrStatementNotFound
		}
		return nil, storageError("load statement", err)
	}
	return statement, nil
}

// liveOwner returns the property's current owner id, loading the property if it was not preloaded.
func (s *StatementService) liveOwner(ctx context.Context, statement *models.OwnerStatement) (*uuid.UUID, error) {
	if statement.Property != nil {
		return statement.Property.OwnerID, nil
	}

	property, err := s.propertyRepo.GetByID(ctx, statement.PropertyID)
	if err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, nil
		}
		return nil, storageError("load property", err)
	}
	statement.Property = property
	return property.OwnerID, nil
}

func (s *StatementService) duplicate(ctx context.Context, propertyID uuid.UUID, period models.StatementPeriod) error {
	s.metrics.IncrementCounter("statement_generated", map[string]string{"status": GenerationStatusDuplicate})
	s.logger.InfoContext(ctx, "statement already exists",
		"property_id", propertyID,
		"period", period.String())
	return ErrDuplicateStatementPeriod
}

func (s *StatementService) generationFailed(ctx context.Context, propertyID uuid.UUID, period models.StatementPeriod, err error) error {
	s.metrics.IncrementCounter("statement_generated", map[string]string{"status": GenerationStatusFailed})
	s.auditLogger.LogStatementGenerationFailed(ctx, propertyID, period, err.Error())
	return err
}

// audit failures are logged and never fail the operation that already happened.
func (s *StatementService) audit(ctx context.Context, caller models.Caller, action string, statementID uuid.UUID, oldValues, newValues models.JSONBMap) {
	err := s.auditService.Record(ctx, caller, action, models.AuditEntityOwnerStatement, statementID.String(), oldValues, newValues)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to write statement audit log",
			"statement_id", statementID,
			"action", action,
			"error", err)
	}
}

func parseGenerateRequest(req *dto.GenerateStatementRequest) (uuid.UUID, models.StatementPeriod, error) {
	if req == nil {
		return uuid.Nil, models.StatementPeriod{}, validationError(ErrStatementValidation, errors.New("request body is required"))
	}

	propertyID, err := uuid.Parse(strings.TrimSpace(req.PropertyID))
	if err != nil || propertyID == uuid.Nil {
		return uuid.Nil, models.StatementPeriod{}, validationError(ErrStatementValidation, errors.New("property_id must be a valid UUID"))
	}

	period, err := models.NewStatementPeriod(req.Year, req.Month)
	if err != nil {
		return uuid.Nil, models.StatementPeriod{}, validationError(ErrStatementValidation, err)
	}

	return propertyID, period, nil
}

func statementSnapshot(s *models.OwnerStatement) models.JSONBMap {
	snapshot := models.JSONBMap{
		"property_id":     s.PropertyID.String(),
		"statement_month": s.Period().String(),
		"total_revenue":   s.TotalRevenue.StringFixed(2),
		"total_expenses":  s.TotalExpenses.StringFixed(2),
		"net_income":      s.NetIncome.StringFixed(2),
		"management_fee":  s.ManagementFee.StringFixed(2),
	}
	if s.OwnerID != nil {
		snapshot["owner_id"] = s.OwnerID.String()
	}
	return snapshot
}
