package dto

import (
	"time"

	"rental-ops/internal/models"
)

// Property Request DTOs

type CreatePropertyRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=255"`
	Address   string `json:"address" validate:"max=255"`
	City      string `json:"city" validate:"max=100"`
	OwnerID   string `json:"owner_id" validate:"omitempty,uuid"`
	Bedrooms  int    `json:"bedrooms" validate:"min=0,max=50"`
	Bathrooms string `json:"bathrooms" validate:"omitempty,non_negative_decimal"`
	IsActive  *bool  `json:"is_active"`
}

type CreateUnitRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// Property Response DTOs

type UnitResponse struct {
	ID         string `json:"id"`
	PropertyID string `json:"property_id"`
	Name       string `json:"name"`
}

type PropertyResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Address   string         `json:"address"`
	City      string         `json:"city"`
	OwnerID   *string        `json:"owner_id,omitempty"`
	OwnerName string         `json:"owner_name,omitempty"`
	Bedrooms  int            `json:"bedrooms"`
	Bathrooms Number         `json:"bathrooms"`
	IsActive  bool           `json:"is_active"`
	Units     []UnitResponse `json:"units"`
	CreatedAt time.Time      `json:"created_at"`
}

type PropertyListResponse struct {
	Properties []PropertyResponse `json:"properties"`
	Total      int                `json:"total"`
}

func NewUnitResponse(u *models.PropertyUnit) UnitResponse {
	return UnitResponse{ID: u.ID.String(), PropertyID: u.PropertyID.String(), Name: u.Name}
}

func NewPropertyResponse(p *models.Property) PropertyResponse {
	resp := PropertyResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Address:   p.Address,
		City:      p.City,
		Bedrooms:  p.Bedrooms,
		Bathrooms: Number(p.Bathrooms),
		IsActive:  p.IsActive,
		Units:     make([]UnitResponse, 0, len(p.Units)),
		CreatedAt: p.CreatedAt,
	}
	if p.OwnerID != nil {
		id := p.OwnerID.String()
		resp.OwnerID = &id
	}
	if p.Owner != nil {
		resp.OwnerName = p.Owner.FullName()
	}
	for i := range p.Units {
		resp.Units = append(resp.Units, NewUnitResponse(&p.Units[i]))
	}
	return resp
}

func NewPropertyListResponse(properties []models.Property) PropertyListResponse {
	out := make([]PropertyResponse, 0, len(properties))
	for i := range properties {
		out = append(out, NewPropertyResponse(&properties[i]))
	}
	return PropertyListResponse{Properties: out, Total: len(out)}
}
