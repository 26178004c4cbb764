package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservation_Validate(t *testing.T) {
	propertyID := uuid.New()
	checkIn := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		reservation Reservation
		wantErr     bool
		errMsg      string
	}{
		{
			name: "valid reservation",
			reservation: Reservation{
				PropertyID:  propertyID,
				GuestName:   "Anna Schmidt",
				CheckIn:     checkIn,
				CheckOut:    checkIn.AddDate(0, 0, 3),
				TotalAmount: decimal.NewNullDecimal(decimal.RequireFromString("380.00")),
				Platform:    PlatformAirbnb,
			},
		},
		{
			name: "missing amount is allowed",
			reservation: Reservation{
				PropertyID: propertyID,
				GuestName:  "Anna Schmidt",
				CheckIn:    checkIn,
				CheckOut:   checkIn.AddDate(0, 0, 1),
			},
		},
		{
			name: "same day checkout",
			reservation: Reservation{
				PropertyID: propertyID,
				GuestName:  "Anna Schmidt",
				CheckIn:    checkIn,
				CheckOut:   checkIn,
			},
			wantErr: true,
			errMsg:  "check-out must be after check-in",
		},
		{
			name: "negative amount",
			reservation: Reservation{
				PropertyID:  propertyID,
				GuestName:   "Anna Schmidt",
				CheckIn:     checkIn,
				CheckOut:    checkIn.AddDate(0, 0, 1),
				TotalAmount: decimal.NewNullDecimal(decimal.NewFromInt(-5)),
			},
			wantErr: true,
			errMsg:  "cannot be negative",
		},
		{
			name: "unknown platform",
			reservation: Reservation{
				PropertyID: propertyID,
				GuestName:  "Anna Schmidt",
				CheckIn:    checkIn,
				CheckOut:   checkIn.AddDate(0, 0, 1),
				Platform:   "craigslist",
			},
			wantErr: true,
			errMsg:  "invalid booking platform",
		},
		{
			name: "missing guest",
			reservation: Reservation{
				PropertyID: propertyID,
				CheckIn:    checkIn,
				CheckOut:   checkIn.AddDate(0, 0, 1),
			},
			wantErr: true,
			errMsg:  "guest name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reservation.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestReservation_AmountAndNights(t *testing.T) {
	checkIn := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	r := Reservation{CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 3)}

	assert.True(t, r.Amount().IsZero())
	assert.Equal(t, 3, r.Nights())

	r.TotalAmount = decimal.NewNullDecimal(decimal.RequireFromString("120.50"))
	assert.Equal(t, "120.50", r.Amount().StringFixed(2))
}

func TestReservation_BeforeCreateNormalizesDates(t *testing.T) {
	r := Reservation{
		PropertyID: uuid.New(),
		GuestName:  "Guest",
		CheckIn:    time.Date(2025, 6, 12, 15, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2025, 6, 15, 11, 0, 0, 0, time.UTC),
	}

	require.NoError(t, r.BeforeCreate(nil))
	assert.Equal(t, PlatformDirect, r.Platform)
	assert.True(t, r.CheckOut.Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.NotEqual(t, uuid.Nil, r.ID)
}
