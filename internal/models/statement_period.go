package models

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinStatementYear = 2000
	MaxStatementYear = 2100
)

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = fmt.Errorf("year must be between %d and %d", MinStatementYear, MaxStatementYear)
)

// StatementPeriod is a calendar month. All boundaries are computed in UTC.
type StatementPeriod struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// NewStatementPeriod validates year and month and returns the period.
func NewStatementPeriod(year, month int) (StatementPeriod, error) {
	if month < 1 || month > 12 {
		return StatementPeriod{}, ErrInvalidMonth
	}
	if year < MinStatementYear || year > MaxStatementYear {
		return StatementPeriod{}, ErrInvalidYear
	}
	return StatementPeriod{Year: year, Month: month}, nil
}

// PeriodFromDate returns the period containing t.
func PeriodFromDate(t time.Time) StatementPeriod {
	t = t.UTC()
	return StatementPeriod{Year: t.Year(), Month: int(t.Month())}
}

// FirstDay is midnight UTC on the first day of the month. It is also the stored statement_month value.
func (p StatementPeriod) FirstDay() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// LastDay is midnight UTC on the last calendar day of the month.
func (p StatementPeriod) LastDay() time.Time {
	return p.NextMonthStart().AddDate(0, 0, -1)
}

// NextMonthStart is the exclusive upper bound used by window queries.
func (p StatementPeriod) NextMonthStart() time.Time {
	return p.FirstDay().AddDate(0, 1, 0)
}

// Contains reports whether the calendar date of t lies in [FirstDay, LastDay].
func (p StatementPeriod) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(p.FirstDay()) && d.Before(p.NextMonthStart())
}

func (p StatementPeriod) MonthName() string {
	return time.Month(p.Month).String()
}

// Label renders the period as "June 2025".
func (p StatementPeriod) Label() string {
	return fmt.Sprintf("%s %d", p.MonthName(), p.Year)
}

func (p StatementPeriod) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// DateOnly truncates t to midnight UTC of its calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t.UTC(), nil
}
