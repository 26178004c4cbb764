package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OwnerStatement is the monthly financial statement of one property. At most one exists per
// (property, statement month); the unique index is the source of truth for that rule.
//
// NetIncome is revenue minus expenses. The management fee is kept as a separate absolute amount
// and the owner's payout is derived from both, see NetPayout.
type OwnerStatement struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PropertyID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_owner_statements_property_period,priority:1" json:"property_id"`
	OwnerID        *uuid.UUID      `gorm:"type:uuid;index" json:"owner_id,omitempty"`
	StatementMonth time.Time       `gorm:"type:date;not null;uniqueIndex:idx_owner_statements_property_period,priority:2" json:"statement_month"`
	TotalRevenue   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total_revenue"`
	TotalExpenses  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total_expenses"`
	NetIncome      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"net_income"`
	ManagementFee  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"management_fee"`
	IsPublished    bool            `gorm:"not null;default:false;index" json:"is_published"`
	PublishedAt    *time.Time      `json:"published_at,omitempty"`
	Notes          string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`

	Property *Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"property,omitempty"`
	Owner    *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL" json:"-"`
}

func (s *OwnerStatement) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	s.StatementMonth = PeriodFromDate(s.StatementMonth).FirstDay()

	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}
	return nil
}

// Period returns the calendar month the statement covers.
func (s *OwnerStatement) Period() StatementPeriod {
	return PeriodFromDate(s.StatementMonth)
}

// NetPayout is what the owner receives: net income less the management fee.
func (s *OwnerStatement) NetPayout() decimal.Decimal {
	return s.NetIncome.Sub(s.ManagementFee)
}

func (s *OwnerStatement) TableName() string {
	return "owner_statements"
}

// StatementFilters narrows statement listings. Nil fields are not applied.
type StatementFilters struct {
	OwnerID       *uuid.UUID
	PropertyID    *uuid.UUID
	Year          *int
	PublishedOnly bool
}

// PeriodTotals are the aggregated sums for one property and month.
type PeriodTotals struct {
	PropertyID    uuid.UUID       `json:"property_id"`
	Period        StatementPeriod `json:"period"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
}

// NetIncome is revenue minus expenses.
func (t PeriodTotals) NetIncome() decimal.Decimal {
	return t.TotalRevenue.Sub(t.TotalExpenses)
}
