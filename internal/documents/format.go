package documents

import (
	"strings"
	"time"

	"rental-ops/internal/models"

	"github.com/shopspring/decimal"
)

const (
	unassignedOwner = "Unassigned"
	emptyCell       = "-"
	ellipsis        = "..."
)

// FormatMoney renders d as symbol + amount with thousands separators and two decimals.
// Negative amounts carry the sign before the symbol: -$1,234.50.
func FormatMoney(symbol string, d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return sign + symbol + b.String() + "." + frac
}

// FormatDeduction renders an amount that is subtracted in the summary.
func FormatDeduction(symbol string, d decimal.Decimal) string {
	return FormatMoney(symbol, d.Neg())
}

func formatShortDate(t time.Time) string {
	return t.Format("Jan 2")
}

func formatLongDate(t time.Time) string {
	return t.UTC().Format("January 2, 2006")
}

func platformLabel(platform string) string {
	switch platform {
	case models.PlatformAirbnb:
		return "Airbnb"
	case models.PlatformBooking:
		return "Booking.com"
	case models.PlatformVrbo:
		return "VRBO"
	case models.PlatformDirect:
		return "Direct"
	case "":
		return emptyCell
	default:
		return titleCase(platform)
	}
}

func categoryLabel(category string) string {
	if category == "" {
		return emptyCell
	}
	return titleCase(category)
}

func titleCase(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return emptyCell
	}
	return s
}

// ownerLines is the name and email printed under "Property Owner".
func ownerLines(owner *models.User) (string, string) {
	if owner == nil {
		return unassignedOwner, ""
	}
	name := strings.TrimSpace(owner.FullName())
	if name == "" {
		name = owner.Email
	}
	return name, owner.Email
}

func brandingFooter(company, tagline string) string {
	return strings.TrimSpace(company + " " + tagline)
}
