package repositories

import (
	"context"
	"testing"
	"time"

	"rental-ops/internal/database"
	"rental-ops/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestExpenseRepository(t *testing.T) {
	suite.Run(t, new(ExpenseRepositorySuite))
}

type ExpenseRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     ExpenseRepositoryInterface
	ctx      context.Context
	property *models.Property
	june     models.StatementPeriod
}

func (s *ExpenseRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewExpenseRepository(s.db.DB)
	s.ctx = context.Background()
	s.property = database.CreateTestProperty(s.T(), s.db, nil)
	s.june = models.StatementPeriod{Year: 2025, Month: 6}
}

func (s *ExpenseRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ExpenseRepositorySuite) TestCreateAndGetByID() {
	expense := &models.Expense{
		PropertyID:  s.property.ID,
		Category:    models.ExpenseCategoryMaintenance,
		Description: "Boiler service",
		Amount:      decimal.RequireFromString("45.00"),
		ExpenseDate: time.Date(2025, 6, 10, 15, 4, 0, 0, time.UTC),
		IsBillable:  true,
	}
	s.Require().NoError(s.repo.Create(s.ctx, expense))

	found, err := s.repo.GetByID(s.ctx, expense.ID)
	s.Require().NoError(err)
	s.Equal("Boiler service", found.Description)
	s.True(found.ExpenseDate.Equal(day(2025, time.June, 10)))

	_, err = s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrExpenseNotFound)
}

func (s *ExpenseRepositorySuite) TestCreate_InvalidAmount() {
	err := s.repo.Create(s.ctx, &models.Expense{
		PropertyID:  s.property.ID,
		Category:    models.ExpenseCategoryCleaning,
		Amount:      decimal.Zero,
		ExpenseDate: day(2025, time.June, 10),
	})
	s.Error(err)
}

func (s *ExpenseRepositorySuite) TestSumAmount_IncludesNonBillable() {
	database.CreateTestExpense(s.T(), s.db, s.property.ID, day(2025, time.June, 1), decimal.RequireFromString("45.00"), true)
	database.CreateTestExpense(s.T(), s.db, s.property.ID, day(2025, time.June, 30), decimal.RequireFromString("12.35"), false)
	database.CreateTestExpense(s.T(), s.db, s.property.ID, day(2025, time.July, 1), decimal.RequireFromString("500"), true)
	database.CreateTestExpense(s.T(), s.db, s.property.ID, day(2025, time.May, 31), decimal.RequireFromString("500"), true)

	other := database.CreateTestProperty(s.T(), s.db, nil)
	database.CreateTestExpense(s.T(), s.db, other.ID, day(2025, time.June, 15), decimal.RequireFromString("500"), true)

	total, err := s.repo.SumAmount(s.ctx, s.property.ID, s.june.FirstDay(), s.june.NextMonthStart())
	s.NoError(err)
	s.Equal("57.35", total.StringFixed(2))
}

func (s *ExpenseRepositorySuite) TestSumAmount_Empty() {
	total, err := s.repo.SumAmount(s.ctx, s.property.ID, s.june.FirstDay(), s.june.NextMonthStart())
	s.NoError(err)
	s.True(total.IsZero())
}

func (s *ExpenseRepositorySuite) TestListLines() {
	database.CreateTestExpense(s.T(), s.db, s.property.ID, day(2025, time.June, 20), decimal.RequireFromString("20"), false)
	database.CreateTestExpense(s.T(), s.db, s.property.ID, day(2025, time.June, 3), decimal.RequireFromString("7.5"), true)
	database.CreateTestExpense(s.T(), s.db, s.property.ID, day(2025, time.July, 3), decimal.RequireFromString("1"), true)

	lines, err := s.repo.ListLines(s.ctx, s.property.ID, s.june.FirstDay(), s.june.NextMonthStart())
	s.Require().NoError(err)
	s.Require().Len(lines, 2)
	s.True(lines[0].ExpenseDate.Equal(day(2025, time.June, 3)))
	s.Equal("7.50", lines[0].Amount.StringFixed(2))
	s.True(lines[0].IsBillable)
	s.False(lines[1].IsBillable)
	s.Equal(models.ExpenseCategoryCleaning, lines[1].Category)
}

func (s *ExpenseRepositorySuite) TestList() {
	database.CreateTestExpense(s.T(), s.db, s.property.ID, day(2025, time.June, 3), decimal.NewFromInt(10), true)
	database.CreateTestExpense(s.T(), s.db, s.property.ID, day(2025, time.August, 3), decimal.NewFromInt(10), true)

	from := s.june.FirstDay()
	expenses, total, err := s.repo.List(s.ctx, models.ExpenseFilters{PropertyID: &s.property.ID, From: &from})
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(expenses, 2)

	to := s.june.NextMonthStart()
	expenses, total, err = s.repo.List(s.ctx, models.ExpenseFilters{PropertyID: &s.property.ID, From: &from, To: &to})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(expenses, 1)
}
