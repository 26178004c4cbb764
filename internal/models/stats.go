package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatsRange is a whole calendar year, or one month of it when Month is set.
type StatsRange struct {
	Year  int
	Month int
}

// Periods lists the months the range covers in order.
func (r StatsRange) Periods() ([]StatementPeriod, error) {
	if r.Month != 0 {
		p, err := NewStatementPeriod(r.Year, r.Month)
		if err != nil {
			return nil, err
		}
		return []StatementPeriod{p}, nil
	}

	periods := make([]StatementPeriod, 0, 12)
	for m := 1; m <= 12; m++ {
		p, err := NewStatementPeriod(r.Year, m)
		if err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, nil
}

// PropertyStats totals one property over a StatsRange.
type PropertyStats struct {
	PropertyID    uuid.UUID
	PropertyName  string
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	ManagementFee decimal.Decimal
}

func (p PropertyStats) NetIncome() decimal.Decimal {
	return p.TotalRevenue.Sub(p.TotalExpenses)
}

func (p PropertyStats) NetPayout() decimal.Decimal {
	return p.NetIncome().Sub(p.ManagementFee)
}

// PortfolioStats summarises every property a caller can see over a StatsRange.
// From is inclusive and To exclusive.
type PortfolioStats struct {
	From           time.Time
	To             time.Time
	Properties     []PropertyStats
	OpenTasks      int64
	ScheduledTasks int64
}

func (s *PortfolioStats) TotalRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Properties {
		total = total.Add(p.TotalRevenue)
	}
	return total
}

func (s *PortfolioStats) TotalExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Properties {
		total = total.Add(p.TotalExpenses)
	}
	return total
}

func (s *PortfolioStats) ManagementFee() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Properties {
		total = total.Add(p.ManagementFee)
	}
	return total
}

func (s *PortfolioStats) NetIncome() decimal.Decimal {
	return s.TotalRevenue().Sub(s.TotalExpenses())
}

func (s *PortfolioStats) NetPayout() decimal.Decimal {
	return s.NetIncome().Sub(s.ManagementFee())
}
