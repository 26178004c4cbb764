package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rental-ops/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseRepository handles database operations for property expenses
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	if expense == nil {
		return errors.New("expense cannot be nil")
	}

	if err := r.db.WithContext(ctx).Omit("Property").Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense by ID: %w", err)
	}
	return &expense, nil
}

func (r *ExpenseRepository) List(ctx context.Context, filters models.ExpenseFilters) ([]models.Expense, int64, error) {
	offset, limit := normalizePagination(filters.Offset, filters.Limit)

	var expenses []models.Expense
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Expense{})
	if filters.PropertyID != nil {
		query = query.Where("property_id = ?", *filters.PropertyID)
	}
	if filters.From != nil {
		query = query.Where("expense_date >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("expense_date < ?", *filters.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	if err := query.Order("expense_date DESC, created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&expenses).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}

	return expenses, total, nil
}

// SumAmount totals expenses dated in [from, to). Billable and non-billable expenses are both counted.
func (r *ExpenseRepository) SumAmount(ctx context.Context, propertyID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal

	err := r.db.WithContext(ctx).Raw(
		"SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE property_id = ? AND expense_date >= ? AND expense_date < ?",
		propertyID, from, to,
	).Row().Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return total.Round(2), nil
}

// ListLines returns the expense rows for [from, to) ordered by date.
func (r *ExpenseRepository) ListLines(ctx context.Context, propertyID uuid.UUID, from, to time.Time) ([]models.ExpenseLine, error) {
	var lines []models.ExpenseLine

	err := r.db.WithContext(ctx).Model(&models.Expense{}).
		Select("expense_date, category, description, amount, is_billable").
		Where("property_id = ? AND expense_date >= ? AND expense_date < ?", propertyID, from, to).
		Order("expense_date, created_at, id").
		Scan(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expense lines: %w", err)
	}

	for i := range lines {
		lines[i].ExpenseDate = models.DateOnly(lines[i].ExpenseDate)
		lines[i].Amount = lines[i].Amount.Round(2)
	}

	return lines, nil
}
