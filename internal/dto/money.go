package dto

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount that serializes as a bare JSON number with two decimals.
type Money decimal.Decimal

func NewMoney(d decimal.Decimal) Money {
	return Money(d.Round(2))
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.Decimal(m)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(m).StringFixed(2)), nil
}

// UnmarshalJSON accepts both 12.5 and "12.50".
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid money value %q: %w", data, err)
	}
	*m = Money(d)
	return nil
}

// Number is a non-monetary decimal such as a bathroom count, serialized as a bare JSON number.
type Number decimal.Decimal

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(n).String()), nil
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", data, err)
	}
	*n = Number(d)
	return nil
}
