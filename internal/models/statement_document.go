package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservationLine is one row of the rental income table, mapped straight from the window query.
type ReservationLine struct {
	GuestName string          `json:"guest_name"`
	UnitName  string          `json:"unit_name"`
	Platform  string          `json:"platform"`
	CheckIn   time.Time       `json:"check_in"`
	CheckOut  time.Time       `json:"check_out"`
	Amount    decimal.Decimal `json:"amount"`
}

// ExpenseLine is one row of the expenses table.
type ExpenseLine struct {
	ExpenseDate time.Time       `json:"expense_date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	IsBillable  bool            `json:"is_billable"`
}

// StatementDocument is everything a renderer needs to lay out one statement.
type StatementDocument struct {
	Statement    *OwnerStatement
	Property     *Property
	Owner        *User
	Reservations []ReservationLine
	Expenses     []ExpenseLine
}

// Period returns the statement period.
func (d *StatementDocument) Period() StatementPeriod {
	return d.Statement.Period()
}

// RenderedDocument is a finished download.
type RenderedDocument struct {
	Filename    string
	ContentType string
	Content     []byte
}

const (
	DocumentFormatPDF  = "pdf"
	DocumentFormatXLSX = "xlsx"
)
