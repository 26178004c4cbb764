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
	PlatformAirbnb  = "airbnb"
	PlatformBooking = "booking"
	PlatformVrbo    = "vrbo"
	PlatformDirect  = "direct"
	PlatformOther   = "other"
)

var (
	ErrInvalidStay     = errors.New("check-out must be after check-in")
	ErrInvalidPlatform = errors.New("invalid booking platform")
)

// Reservation is a guest stay occupying [CheckIn, CheckOut). Revenue is recognised on the check-out date.
type Reservation struct {
	ID          uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	PropertyID  uuid.UUID           `gorm:"type:uuid;not null;index" json:"property_id"`
	UnitID      *uuid.UUID          `gorm:"type:uuid;index" json:"unit_id,omitempty"`
	GuestName   string              `gorm:"type:varchar(255);not null" json:"guest_name"`
	GuestEmail  string              `gorm:"type:varchar(255)" json:"guest_email,omitempty"`
	GuestPhone  string              `gorm:"type:varchar(50)" json:"guest_phone,omitempty"`
	CheckIn     time.Time           `gorm:"type:date;not null" json:"check_in"`
	CheckOut    time.Time           `gorm:"type:date;not null;index" json:"check_out"`
	TotalAmount decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"total_amount"`
	Platform    string              `gorm:"type:varchar(30);not null;default:'direct'" json:"platform"`
	Notes       string              `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time           `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time           `gorm:"not null" json:"updated_at"`

	Property *Property     `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
	Unit     *PropertyUnit `gorm:"foreignKey:UnitID;constraint:OnDelete:SET NULL" json:"unit,omitempty"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	r.CheckIn = DateOnly(r.CheckIn)
	r.CheckOut = DateOnly(r.CheckOut)
	if r.Platform == "" {
		r.Platform = PlatformDirect
	}

	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	return r.Validate()
}

func (r *Reservation) Validate() error {
	if r.PropertyID == uuid.Nil {
		return errors.New("property is required")
	}
	if strings.TrimSpace(r.GuestName) == "" {
		return errors.New("guest name is required")
	}
	if !DateOnly(r.CheckOut).After(DateOnly(r.CheckIn)) {
		return ErrInvalidStay
	}
	if r.TotalAmount.Valid && r.TotalAmount.Decimal.IsNegative() {
		return errors.New("total amount cannot be negative")
	}
	if r.Platform != "" && !IsValidPlatform(r.Platform) {
		return fmt.Errorf("%w: %s", ErrInvalidPlatform, r.Platform)
	}
	return nil
}

// Nights is the number of nights in the stay.
func (r *Reservation) Nights() int {
	return int(DateOnly(r.CheckOut).Sub(DateOnly(r.CheckIn)).Hours() / 24)
}

// Amount returns the stay amount, treating a missing amount as zero.
func (r *Reservation) Amount() decimal.Decimal {
	if !r.TotalAmount.Valid {
		return decimal.Zero
	}
	return r.TotalAmount.Decimal
}

func (r *Reservation) TableName() string {
	return "reservations"
}

func IsValidPlatform(platform string) bool {
	switch platform {
	case PlatformAirbnb, PlatformBooking, PlatformVrbo, PlatformDirect, PlatformOther:
		return true
	}
	return false
}

// ReservationFilters narrows reservation listings. From and To bound the check-out date, To is exclusive.
type ReservationFilters struct {
	PropertyID *uuid.UUID
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}
