package dto

import (
	"time"

	"rental-ops/internal/models"
)

// Reservation Request DTOs

// CreateReservationRequest books a stay. Dates are YYYY-MM-DD; total_amount may be omitted.
type CreateReservationRequest struct {
	PropertyID  string `json:"property_id" validate:"required,uuid"`
	UnitID      string `json:"unit_id" validate:"omitempty,uuid"`
	GuestName   string `json:"guest_name" validate:"required,min=1,max=255"`
	GuestEmail  string `json:"guest_email" validate:"omitempty,email"`
	GuestPhone  string `json:"guest_phone" validate:"omitempty,max=50"`
	CheckIn     string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut    string `json:"check_out" validate:"required,datetime=2006-01-02"`
	TotalAmount string `json:"total_amount" validate:"omitempty,non_negative_decimal"`
	Platform    string `json:"platform" validate:"omitempty,platform"`
	Notes       string `json:"notes" validate:"max=2000"`
}

// Reservation Response DTOs

type ReservationResponse struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"property_id"`
	UnitID      *string   `json:"unit_id,omitempty"`
	UnitName    string    `json:"unit_name,omitempty"`
	GuestName   string    `json:"guest_name"`
	GuestEmail  string    `json:"guest_email,omitempty"`
	CheckIn     string    `json:"check_in"`
	CheckOut    string    `json:"check_out"`
	Nights      int       `json:"nights"`
	TotalAmount *Money    `json:"total_amount"`
	Platform    string    `json:"platform"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Pagination   PaginationMeta        `json:"pagination"`
}

// PaginationMeta represents pagination metadata
type PaginationMeta struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Total  int64 `json:"total"`
}

func NewReservationResponse(r *models.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:         r.ID.String(),
		PropertyID: r.PropertyID.String(),
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		CheckIn:    r.CheckIn.Format(time.DateOnly),
		CheckOut:   r.CheckOut.Format(time.DateOnly),
		Nights:     r.Nights(),
		Platform:   r.Platform,
		CreatedAt:  r.CreatedAt,
	}
	if r.UnitID != nil {
		id := r.UnitID.String()
		resp.UnitID = &id
	}
	if r.Unit != nil {
		resp.UnitName = r.Unit.Name
	}
	if r.TotalAmount.Valid {
		amount := NewMoney(r.TotalAmount.Decimal)
		resp.TotalAmount = &amount
	}
	return resp
}

func NewReservationListResponse(reservations []models.Reservation, offset, limit int, total int64) ReservationListResponse {
	out := make([]ReservationResponse, 0, len(reservations))
	for i := range reservations {
		out = append(out, NewReservationResponse(&reservations[i]))
	}
	return ReservationListResponse{
		Reservations: out,
		Pagination:   PaginationMeta{Offset: offset, Limit: limit, Total: total},
	}
}
