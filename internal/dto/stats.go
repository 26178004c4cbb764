package dto

import (
	"time"

	"rental-ops/internal/models"
)

type PropertyStatsResponse struct {
	PropertyID    string `json:"property_id"`
	PropertyName  string `json:"property_name"`
	TotalRevenue  Money  `json:"total_revenue"`
	TotalExpenses Money  `json:"total_expenses"`
	NetIncome     Money  `json:"net_income"`
	ManagementFee Money  `json:"management_fee"`
	NetPayout     Money  `json:"net_payout"`
}

type StatsResponse struct {
	From           string                  `json:"from"`
	To             string                  `json:"to"`
	PropertyCount  int                     `json:"property_count"`
	TotalRevenue   Money                   `json:"total_revenue"`
	TotalExpenses  Money                   `json:"total_expenses"`
	NetIncome      Money                   `json:"net_income"`
	ManagementFee  Money                   `json:"management_fee"`
	NetPayout      Money                   `json:"net_payout"`
	OpenTasks      int64                   `json:"open_tasks"`
	ScheduledTasks int64                   `json:"scheduled_tasks"`
	Properties     []PropertyStatsResponse `json:"properties"`
}

// NewStatsResponse reports the range with an inclusive last day.
func NewStatsResponse(s *models.PortfolioStats) StatsResponse {
	rows := make([]PropertyStatsResponse, 0, len(s.Properties))
	for _, p := range s.Properties {
		rows = append(rows, PropertyStatsResponse{
			PropertyID:    p.PropertyID.String(),
			PropertyName:  p.PropertyName,
			TotalRevenue:  NewMoney(p.TotalRevenue),
			TotalExpenses: NewMoney(p.TotalExpenses),
			NetIncome:     NewMoney(p.NetIncome()),
			ManagementFee: NewMoney(p.ManagementFee),
			NetPayout:     NewMoney(p.NetPayout()),
		})
	}

	return StatsResponse{
		From:           s.From.Format(time.DateOnly),
		To:             s.To.AddDate(0, 0, -1).Format(time.DateOnly),
		PropertyCount:  len(s.Properties),
		TotalRevenue:   NewMoney(s.TotalRevenue()),
		TotalExpenses:  NewMoney(s.TotalExpenses()),
		NetIncome:      NewMoney(s.NetIncome()),
		ManagementFee:  NewMoney(s.ManagementFee()),
		NetPayout:      NewMoney(s.NetPayout()),
		OpenTasks:      s.OpenTasks,
		ScheduledTasks: s.ScheduledTasks,
		Properties:     rows,
	}
}
