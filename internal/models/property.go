package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Property is a rental managed on behalf of an owner. OwnerID is nil for unmanaged properties.
type Property struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Address   string          `gorm:"type:varchar(255)" json:"address"`
	City      string          `gorm:"type:varchar(100)" json:"city"`
	OwnerID   *uuid.UUID      `gorm:"type:uuid;index" json:"owner_id,omitempty"`
	Bedrooms  int             `gorm:"not null;default:0" json:"bedrooms"`
	Bathrooms decimal.Decimal `gorm:"type:decimal(3,1);not null;default:0" json:"bathrooms"`
	IsActive  bool            `gorm:"not null" json:"is_active"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`

	Owner *User          `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL" json:"owner,omitempty"`
	Units []PropertyUnit `gorm:"foreignKey:PropertyID" json:"units,omitempty"`
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

func (p *Property) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("property name is required")
	}
	if p.Bedrooms < 0 {
		return errors.New("bedrooms cannot be negative")
	}
	if p.Bathrooms.IsNegative() {
		return errors.New("bathrooms cannot be negative")
	}
	return nil
}

// IsOwnedBy reports whether userID is the current owner of the property.
func (p *Property) IsOwnedBy(userID uuid.UUID) bool {
	return p.OwnerID != nil && *p.OwnerID == userID
}

// AddressLine joins street address and city the way documents print them.
func (p *Property) AddressLine() string {
	parts := make([]string, 0, 2)
	if s := strings.TrimSpace(p.Address); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(p.City); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

func (p *Property) TableName() string {
	return "properties"
}

// PropertyUnit is a bookable sub-unit of a property (a room or apartment).
type PropertyUnit struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index" json:"property_id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`

	Property *Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *PropertyUnit) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	if strings.TrimSpace(u.Name) == "" {
		return errors.New("unit name is required")
	}
	return nil
}

func (u *PropertyUnit) TableName() string {
	return "property_units"
}

// PropertyFilters narrows property listings.
type PropertyFilters struct {
	OwnerID    *uuid.UUID
	ActiveOnly bool
}
