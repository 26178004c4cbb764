package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"rental-ops/internal/dto"
	"rental-ops/internal/models"
	"rental-ops/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseService struct {
	expenseRepo  repositories.ExpenseRepositoryInterface
	propertyRepo repositories.PropertyRepositoryInterface
	auditService AuditServiceInterface
	logger       *slog.Logger
}

func NewExpenseService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	propertyRepo repositories.PropertyRepositoryInterface,
	auditService AuditServiceInterface,
	logger *slog.Logger,
) ExpenseServiceInterface {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		propertyRepo: propertyRepo,
		auditService: auditService,
		logger:       logger,
	}
}

// Create records an expense. Expenses default to billable.
func (s *ExpenseService) Create(ctx context.Context, caller models.Caller, req *dto.CreateExpenseRequest) (*models.Expense, error) {
	if err := RequireAdmin(caller); err != nil {
		return nil, err
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		return nil, validationError(ErrValidation, errors.New("property_id must be a valid UUID"))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, validationError(ErrValidation, errors.New("amount must be a number"))
	}

	expenseDate, err := models.ParseDate(req.ExpenseDate)
	if err != nil {
		return nil, validationError(ErrValidation, err)
	}

	expense := &models.Expense{
		PropertyID:  propertyID,
		Category:    strings.ToLower(strings.TrimSpace(req.Category)),
		Description: strings.TrimSpace(req.Description),
		Amount:      amount.Round(2),
		ExpenseDate: expenseDate,
		IsBillable:  true,
	}
	if req.IsBillable != nil {
		expense.IsBillable = *req.IsBillable
	}
	if caller.UserID != uuid.Nil {
		createdBy := caller.UserID
		expense.CreatedBy = &createdBy
	}

	if err := expense.Validate(); err != nil {
		return nil, validationError(ErrValidation, err)
	}

	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, storageError("load property", err)
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, storageError("create expense", err)
	}

	if err := s.auditService.Record(ctx, caller, models.AuditActionCreate, models.AuditEntityExpense, expense.ID.String(), nil, models.JSONBMap{
		"property_id":  propertyID.String(),
		"category":     expense.Category,
		"amount":       expense.Amount.StringFixed(2),
		"expense_date": expense.ExpenseDate.Format("2006-01-02"),
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to write expense audit log", "expense_id", expense.ID, "error", err)
	}

	return expense, nil
}

func (s *ExpenseService) List(ctx context.Context, caller models.Caller, filters models.ExpenseFilters) ([]models.Expense, int64, error) {
	if err := RequireAdmin(caller); err != nil {
		return nil, 0, err
	}
	if filters.From != nil && filters.To != nil && !filters.From.Before(*filters.To) {
		return nil, 0, validationError(ErrValidation, errors.New("from must be before to"))
	}

	expenses, total, err := s.expenseRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, storageError("list expenses", err)
	}
	return expenses, total, nil
}
