package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ExpenseCategoryCleaning    = "cleaning"
	ExpenseCategoryMaintenance = "maintenance"
	ExpenseCategoryUtilities   = "utilities"
	ExpenseCategorySupplies    = "supplies"
	ExpenseCategoryRepairs     = "repairs"
	ExpenseCategoryOther       = "other"
)

type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PropertyID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"property_id"`
	Category    string          `gorm:"type:varchar(50);not null" json:"category"`
	Description string          `gorm:"type:text" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	ExpenseDate time.Time       `gorm:"type:date;not null;index" json:"expense_date"`
	IsBillable  bool            `gorm:"not null" json:"is_billable"`
	CreatedBy   *uuid.UUID      `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	Property *Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	e.ExpenseDate = DateOnly(e.ExpenseDate)

	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	return e.Validate()
}

func (e *Expense) Validate() error {
	if e.PropertyID == uuid.Nil {
		return errors.New("property is required")
	}
	if strings.TrimSpace(e.Category) == "" {
		return errors.New("category is required")
	}
	if !IsValidExpenseCategory(e.Category) {
		return fmt.Errorf("invalid expense category: %s", e.Category)
	}
	if !e.Amount.IsPositive() {
		return errors.New("amount must be greater than 0")
	}
	if e.ExpenseDate.IsZero() {
		return errors.New("expense date is required")
	}
	return nil
}

func IsValidExpenseCategory(category string) bool {
	switch category {
	case ExpenseCategoryCleaning, ExpenseCategoryMaintenance, ExpenseCategoryUtilities,
		ExpenseCategorySupplies, ExpenseCategoryRepairs, ExpenseCategoryOther:
		return true
	}
	return false
}

func (e *Expense) TableName() string {
	return "expenses"
}

// ExpenseFilters narrows expense listings. From is inclusive and To exclusive on expense_date.
type ExpenseFilters struct {
	PropertyID *uuid.UUID
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}
