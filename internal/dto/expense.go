package dto

import (
	"time"

	"rental-ops/internal/models"
)

// Expense Request DTOs

type CreateExpenseRequest struct {
	PropertyID  string `json:"property_id" validate:"required,uuid"`
	Category    string `json:"category" validate:"required,oneof=cleaning maintenance utilities supplies repairs other"`
	Description string `json:"description" validate:"max=1000"`
	Amount      string `json:"amount" validate:"required,positive_decimal"`
	ExpenseDate string `json:"expense_date" validate:"required,datetime=2006-01-02"`
	IsBillable  *bool  `json:"is_billable"`
}

// Expense Response DTOs

type ExpenseResponse struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"property_id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      Money     `json:"amount"`
	ExpenseDate string    `json:"expense_date"`
	IsBillable  bool      `json:"is_billable"`
	CreatedAt   time.Time `json:"created_at"`
}

type ExpenseListResponse struct {
	Expenses   []ExpenseResponse `json:"expenses"`
	Pagination PaginationMeta    `json:"pagination"`
}

func NewExpenseResponse(e *models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		PropertyID:  e.PropertyID.String(),
		Category:    e.Category,
		Description: e.Description,
		Amount:      NewMoney(e.Amount),
		ExpenseDate: e.ExpenseDate.Format(time.DateOnly),
		IsBillable:  e.IsBillable,
		CreatedAt:   e.CreatedAt,
	}
}

func NewExpenseListResponse(expenses []models.Expense, offset, limit int, total int64) ExpenseListResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, NewExpenseResponse(&expenses[i]))
	}
	return ExpenseListResponse{
		Expenses:   out,
		Pagination: PaginationMeta{Offset: offset, Limit: limit, Total: total},
	}
}
