package services

import (
	"fmt"
	"time"

	"rental-ops/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxGeneratedStayNights = 6
	billableExpenseRatio   = 0.8
)

// ActivityGeneratorInterface produces plausible reservations and expenses for demo and load data
type ActivityGeneratorInterface interface {
	GenerateMonth(propertyID uuid.UUID, period models.StatementPeriod, reservations, expenses int) ([]*models.Reservation, []*models.Expense)
}

type activityGenerator struct {
	faker *gofakeit.Faker
}

// NewActivityGenerator creates a generator. A zero seed picks a random one.
func NewActivityGenerator(seed uint64) ActivityGeneratorInterface {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &activityGenerator{faker: gofakeit.New(seed)}
}

// nightly rate ranges per booking platform
var platformRates = map[string][2]float64{
	models.PlatformAirbnb:  {85, 260},
	models.PlatformBooking: {80, 240},
	models.PlatformVrbo:    {110, 320},
	models.PlatformDirect:  {70, 200},
}

var expenseRanges = map[string][2]float64{
	models.ExpenseCategoryCleaning:    {35, 120},
	models.ExpenseCategoryMaintenance: {60, 400},
	models.ExpenseCategoryUtilities:   {40, 220},
	models.ExpenseCategorySupplies:    {10, 90},
	models.ExpenseCategoryRepairs:     {80, 650},
	models.ExpenseCategoryOther:       {5, 150},
}

// GenerateMonth returns reservations checking out inside period and expenses dated inside it
func (g *activityGenerator) GenerateMonth(propertyID uuid.UUID, period models.StatementPeriod, reservations, expenses int) ([]*models.Reservation, []*models.Expense) {
	days := period.LastDay().Day()

	outRes := make([]*models.Reservation, 0, reservations)
	for i := 0; i < reservations; i++ {
		outRes = append(outRes, g.reservation(propertyID, period, days))
	}

	outExp := make([]*models.Expense, 0, expenses)
	for i := 0; i < expenses; i++ {
		outExp = append(outExp, g.expense(propertyID, period, days))
	}

	return outRes, outExp
}

func (g *activityGenerator) reservation(propertyID uuid.UUID, period models.StatementPeriod, days int) *models.Reservation {
	checkOut := period.FirstDay().AddDate(0, 0, g.faker.IntRange(0, days-1))
	nights := g.faker.IntRange(1, maxGeneratedStayNights)
	platform := g.faker.RandomString([]string{
		models.PlatformAirbnb, models.PlatformBooking, models.PlatformVrbo, models.PlatformDirect,
	})

	rate := platformRates[platform]
	nightly := decimal.NewFromFloat(g.faker.Float64Range(rate[0], rate[1])).Round(2)

	return &models.Reservation{
		PropertyID:  propertyID,
		GuestName:   g.faker.Name(),
		GuestEmail:  g.faker.Email(),
		GuestPhone:  g.faker.Phone(),
		CheckIn:     checkOut.AddDate(0, 0, -nights),
		CheckOut:    checkOut,
		TotalAmount: decimal.NewNullDecimal(nightly.Mul(decimal.NewFromInt(int64(nights)))),
		Platform:    platform,
	}
}

func (g *activityGenerator) expense(propertyID uuid.UUID, period models.StatementPeriod, days int) *models.Expense {
	category := g.faker.RandomString([]string{
		models.ExpenseCategoryCleaning, models.ExpenseCategoryMaintenance, models.ExpenseCategoryUtilities,
		models.ExpenseCategorySupplies, models.ExpenseCategoryRepairs, models.ExpenseCategoryOther,
	})
	bounds := expenseRanges[category]

	return &models.Expense{
		PropertyID:  propertyID,
		Category:    category,
		Description: fmt.Sprintf("%s - %s", category, g.faker.Company()),
		Amount:      decimal.NewFromFloat(g.faker.Float64Range(bounds[0], bounds[1])).Round(2),
		ExpenseDate: period.FirstDay().AddDate(0, 0, g.faker.IntRange(0, days-1)),
		IsBillable:  g.faker.Float64() < billableExpenseRatio,
	}
}
