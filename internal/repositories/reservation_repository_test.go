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

func TestReservationRepository(t *testing.T) {
	suite.Run(t, new(ReservationRepositorySuite))
}

type ReservationRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     ReservationRepositoryInterface
	ctx      context.Context
	property *models.Property
	june     models.StatementPeriod
}

func (s *ReservationRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewReservationRepository(s.db.DB)
	s.ctx = context.Background()
	s.property = database.CreateTestProperty(s.T(), s.db, nil)
	s.june = models.StatementPeriod{Year: 2025, Month: 6}
}

func (s *ReservationRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func money(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func (s *ReservationRepositorySuite) TestCreateAndGetByID() {
	unit := database.CreateTestUnit(s.T(), s.db, s.property.ID, "Unit A")
	reservation := &models.Reservation{
		PropertyID:  s.property.ID,
		UnitID:      &unit.ID,
		GuestName:   "Noa Cohen",
		CheckIn:     day(2025, time.June, 10),
		CheckOut:    day(2025, time.June, 15),
		TotalAmount: decimal.NewNullDecimal(decimal.RequireFromString("380.00")),
	}

	s.Require().NoError(s.repo.Create(s.ctx, reservation))

	found, err := s.repo.GetByID(s.ctx, reservation.ID)
	s.Require().NoError(err)
	s.Equal(models.PlatformDirect, found.Platform)
	s.Equal(5, found.Nights())
	s.True(found.Amount().Equal(decimal.NewFromInt(380)))
	s.Require().NotNil(found.Unit)
	s.Equal("Unit A", found.Unit.Name)

	_, err = s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrReservationNotFound)
}

func (s *ReservationRepositorySuite) TestCreate_InvalidStay() {
	err := s.repo.Create(s.ctx, &models.Reservation{
		PropertyID: s.property.ID,
		GuestName:  "Guest",
		CheckIn:    day(2025, time.June, 15),
		CheckOut:   day(2025, time.June, 15),
	})
	s.ErrorIs(err, models.ErrInvalidStay)
}

func (s *ReservationRepositorySuite) TestSumRevenue_Empty() {
	total, err := s.repo.SumRevenue(s.ctx, s.property.ID, s.june.FirstDay(), s.june.NextMonthStart())
	s.NoError(err)
	s.True(total.IsZero())
}

func (s *ReservationRepositorySuite) TestSumRevenue_WindowBoundaries() {
	database.CreateTestReservation(s.T(), s.db, s.property.ID, day(2025, time.May, 28), day(2025, time.June, 1), money("100.00"))
	database.CreateTestReservation(s.T(), s.db, s.property.ID, day(2025, time.June, 27), day(2025, time.June, 30), money("250.50"))
	database.CreateTestReservation(s.T(), s.db, s.property.ID, day(2025, time.June, 28), day(2025, time.July, 1), money("999.00"))
	database.CreateTestReservation(s.T(), s.db, s.property.ID, day(2025, time.May, 20), day(2025, time.May, 31), money("50.00"))

	total, err := s.repo.SumRevenue(s.ctx, s.property.ID, s.june.FirstDay(), s.june.NextMonthStart())
	s.NoError(err)
	s.Equal("350.50", total.StringFixed(2))
}

func (s *ReservationRepositorySuite) TestSumRevenue_NullAmountAndUnits() {
	unit := database.CreateTestUnit(s.T(), s.db, s.property.ID, "Garden Room")
	other := database.CreateTestProperty(s.T(), s.db, nil)

	database.CreateTestReservation(s.T(), s.db, s.property.ID, day(2025, time.June, 1), day(2025, time.June, 3), nil)
	database.CreateTestReservation(s.T(), s.db, other.ID, day(2025, time.June, 1), day(2025, time.June, 3), money("70.00"))

	// Booked against another property id but on one of this property's units.
	viaUnit := &models.Reservation{
		PropertyID:  other.ID,
		UnitID:      &unit.ID,
		GuestName:   "Unit Guest",
		CheckIn:     day(2025, time.June, 5),
		CheckOut:    day(2025, time.June, 8),
		TotalAmount: decimal.NewNullDecimal(decimal.RequireFromString("120.25")),
	}
	s.Require().NoError(s.repo.Create(s.ctx, viaUnit))

	total, err := s.repo.SumRevenue(s.ctx, s.property.ID, s.june.FirstDay(), s.june.NextMonthStart())
	s.NoError(err)
	s.Equal("120.25", total.StringFixed(2))
}

func (s *ReservationRepositorySuite) TestSumRevenue_CancelledStayMustBeZeroedOrDeleted() {
	kept := database.CreateTestReservation(s.T(), s.db, s.property.ID, day(2025, time.June, 2), day(2025, time.June, 4), money("200.00"))
	zeroed := database.CreateTestReservation(s.T(), s.db, s.property.ID, day(2025, time.June, 5), day(2025, time.June, 7), money("150.00"))
	deleted := database.CreateTestReservation(s.T(), s.db, s.property.ID, day(2025, time.June, 8), day(2025, time.June, 9), money("90.00"))

	// Every stored reservation counts.
	total, err := s.repo.SumRevenue(s.ctx, s.property.ID, s.june.FirstDay(), s.june.NextMonthStart())
	s.Require().NoError(err)
	s.Equal("440.00", total.StringFixed(2))

	s.Require().NoError(s.db.Model(zeroed).Update("total_amount", decimal.Zero).Error)
	s.Require().NoError(s.db.Delete(deleted).Error)

	total, err = s.repo.SumRevenue(s.ctx, s.property.ID, s.june.FirstDay(), s.june.NextMonthStart())
	s.Require().NoError(err)
	s.Equal(kept.TotalAmount.Decimal.StringFixed(2), total.StringFixed(2))
}

func (s *ReservationRepositorySuite) TestListLines() {
	unit := database.CreateTestUnit(s.T(), s.db, s.property.ID, "Unit A")
	late := database.CreateTestReservation(s.T(), s.db, s.property.ID, day(2025, time.June, 20), day(2025, time.June, 25), money("300"))
	early := &models.Reservation{
		PropertyID:  s.property.ID,
		UnitID:      &unit.ID,
		GuestName:   "Early Guest",
		Platform:    models.PlatformBooking,
		CheckIn:     day(2025, time.June, 2),
		CheckOut:    day(2025, time.June, 4),
		TotalAmount: decimal.NewNullDecimal(decimal.RequireFromString("80.5")),
	}
	s.Require().NoError(s.repo.Create(s.ctx, early))
	database.CreateTestReservation(s.T(), s.db, s.property.ID, day(2025, time.June, 29), day(2025, time.July, 2), money("10"))

	lines, err := s.repo.ListLines(s.ctx, s.property.ID, s.june.FirstDay(), s.june.NextMonthStart())
	s.Require().NoError(err)
	s.Require().Len(lines, 2)

	s.Equal("Early Guest", lines[0].GuestName)
	s.Equal("Unit A", lines[0].UnitName)
	s.Equal(models.PlatformBooking, lines[0].Platform)
	s.True(lines[0].CheckOut.Equal(day(2025, time.June, 4)))
	s.Equal("80.50", lines[0].Amount.StringFixed(2))

	s.Equal(late.GuestName, lines[1].GuestName)
	s.Empty(lines[1].UnitName)
}

func (s *ReservationRepositorySuite) TestList_Filters() {
	database.CreateTestReservation(s.T(), s.db, s.property.ID, day(2025, time.June, 1), day(2025, time.June, 5), money("100"))
	database.CreateTestReservation(s.T(), s.db, s.property.ID, day(2025, time.July, 1), day(2025, time.July, 5), money("100"))
	other := database.CreateTestProperty(s.T(), s.db, nil)
	database.CreateTestReservation(s.T(), s.db, other.ID, day(2025, time.June, 1), day(2025, time.June, 5), money("100"))

	from := s.june.FirstDay()
	to := s.june.NextMonthStart()
	reservations, total, err := s.repo.List(s.ctx, models.ReservationFilters{PropertyID: &s.property.ID, From: &from, To: &to})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(reservations, 1)

	all, total, err := s.repo.List(s.ctx, models.ReservationFilters{})
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(all, 3)
}
