package dto

import (
	"time"

	"rental-ops/internal/models"
)

// Statement Request DTOs

// GenerateStatementRequest asks for the statement of one property and month
type GenerateStatementRequest struct {
	PropertyID string `json:"property_id" validate:"required,uuid"`
	Year       int    `json:"year" validate:"required,min=2000,max=2100"`
	Month      int    `json:"month" validate:"required,statement_month"`
}

// UpdateStatementNotesRequest replaces the free-text notes of a statement
type UpdateStatementNotesRequest struct {
	Notes string `json:"notes" validate:"max=5000"`
}

// Statement Response DTOs

// StatementResponse is the JSON shape of an owner statement. Amounts are JSON numbers.
type StatementResponse struct {
	ID             string     `json:"id"`
	PropertyID     string     `json:"property_id"`
	PropertyName   string     `json:"property_name,omitempty"`
	OwnerID        *string    `json:"owner_id,omitempty"`
	Year           int        `json:"year"`
	Month          int        `json:"month"`
	Period         string     `json:"period"`
	StatementMonth string     `json:"statement_month"`
	TotalRevenue   Money      `json:"total_revenue"`
	TotalExpenses  Money      `json:"total_expenses"`
	NetIncome      Money      `json:"net_income"`
	ManagementFee  Money      `json:"management_fee"`
	NetPayout      Money      `json:"net_payout"`
	IsPublished    bool       `json:"is_published"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// StatementListResponse wraps a statement listing
type StatementListResponse struct {
	Statements []StatementResponse `json:"statements"`
	Total      int                 `json:"total"`
}

func NewStatementResponse(s *models.OwnerStatement) StatementResponse {
	period := s.Period()
	resp := StatementResponse{
		ID:             s.ID.String(),
		PropertyID:     s.PropertyID.String(),
		Year:           period.Year,
		Month:          period.Month,
		Period:         period.String(),
		StatementMonth: period.FirstDay().Format(time.DateOnly),
		TotalRevenue:   NewMoney(s.TotalRevenue),
		TotalExpenses:  NewMoney(s.TotalExpenses),
		NetIncome:      NewMoney(s.NetIncome),
		ManagementFee:  NewMoney(s.ManagementFee),
		NetPayout:      NewMoney(s.NetPayout()),
		IsPublished:    s.IsPublished,
		PublishedAt:    s.PublishedAt,
		Notes:          s.Notes,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
	if s.OwnerID != nil {
		id := s.OwnerID.String()
		resp.OwnerID = &id
	}
	if s.Property != nil {
		resp.PropertyName = s.Property.Name
	}
	return resp
}

func NewStatementListResponse(statements []models.OwnerStatement) StatementListResponse {
	out := make([]StatementResponse, 0, len(statements))
	for i := range statements {
		out = append(out, NewStatementResponse(&statements[i]))
	}
	return StatementListResponse{Statements: out, Total: len(out)}
}
