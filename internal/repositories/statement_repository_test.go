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

func TestStatementRepository(t *testing.T) {
	suite.Run(t, new(StatementRepositorySuite))
}

type StatementRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     StatementRepositoryInterface
	ctx      context.Context
	owner    *models.User
	property *models.Property
}

func (s *StatementRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewStatementRepository(s.db.DB)
	s.ctx = context.Background()
	s.owner = database.CreateTestUser(s.T(), s.db, models.RoleOwner)
	s.property = database.CreateTestProperty(s.T(), s.db, &s.owner.ID)
}

func (s *StatementRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *StatementRepositorySuite) newStatement(propertyID uuid.UUID, ownerID *uuid.UUID, year, month int) *models.OwnerStatement {
	statement := &models.OwnerStatement{
		PropertyID:     propertyID,
		OwnerID:        ownerID,
		StatementMonth: time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
		TotalRevenue:   decimal.RequireFromString("380.00"),
		TotalExpenses:  decimal.RequireFromString("45.00"),
		NetIncome:      decimal.RequireFromString("335.00"),
		ManagementFee:  decimal.RequireFromString("76.00"),
	}
	s.Require().NoError(s.repo.Create(s.ctx, statement))
	return statement
}

func (s *StatementRepositorySuite) TestCreateAndGetByID() {
	statement := s.newStatement(s.property.ID, &s.owner.ID, 2025, 6)
	s.NotEqual(uuid.Nil, statement.ID)
	s.False(statement.IsPublished)

	found, err := s.repo.GetByID(s.ctx, statement.ID)
	s.Require().NoError(err)
	s.Equal("335.00", found.NetIncome.StringFixed(2))
	s.Equal("259.00", found.NetPayout().StringFixed(2))
	s.Equal(models.StatementPeriod{Year: 2025, Month: 6}, found.Period())
	s.Require().NotNil(found.Property)
	s.Equal(s.property.Name, found.Property.Name)
}

func (s *StatementRepositorySuite) TestCreate_NormalizesMonth() {
	statement := &models.OwnerStatement{
		PropertyID:     s.property.ID,
		StatementMonth: time.Date(2025, 3, 17, 13, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.repo.Create(s.ctx, statement))
	s.True(statement.StatementMonth.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func (s *StatementRepositorySuite) TestCreate_DuplicatePeriod() {
	s.newStatement(s.property.ID, &s.owner.ID, 2025, 6)

	err := s.repo.Create(s.ctx, &models.OwnerStatement{
		PropertyID:     s.property.ID,
		StatementMonth: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
	})
	s.ErrorIs(err, ErrDuplicateStatement)

	other := database.CreateTestProperty(s.T(), s.db, nil)
	s.NoError(s.repo.Create(s.ctx, &models.OwnerStatement{
		PropertyID:     other.ID,
		StatementMonth: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}))
}

func (s *StatementRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrStatementNotFound)
}

func (s *StatementRepositorySuite) TestExistsForPeriod() {
	s.newStatement(s.property.ID, &s.owner.ID, 2025, 6)

	exists, err := s.repo.ExistsForPeriod(s.ctx, s.property.ID, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	s.NoError(err)
	s.True(exists)

	exists, err = s.repo.ExistsForPeriod(s.ctx, s.property.ID, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	s.NoError(err)
	s.False(exists)
}

func (s *StatementRepositorySuite) TestList_OrderAndFilters() {
	may := s.newStatement(s.property.ID, &s.owner.ID, 2025, 5)
	june := s.newStatement(s.property.ID, &s.owner.ID, 2025, 6)
	december := s.newStatement(s.property.ID, &s.owner.ID, 2024, 12)

	unmanaged := database.CreateTestProperty(s.T(), s.db, nil)
	s.newStatement(unmanaged.ID, nil, 2025, 6)

	all, err := s.repo.List(s.ctx, models.StatementFilters{})
	s.Require().NoError(err)
	s.Len(all, 4)

	owned, err := s.repo.List(s.ctx, models.StatementFilters{OwnerID: &s.owner.ID})
	s.Require().NoError(err)
	s.Require().Len(owned, 3)
	s.Equal(june.ID, owned[0].ID)
	s.Equal(may.ID, owned[1].ID)
	s.Equal(december.ID, owned[2].ID)
	s.NotNil(owned[0].Property)

	year := 2025
	byYear, err := s.repo.List(s.ctx, models.StatementFilters{PropertyID: &s.property.ID, Year: &year})
	s.Require().NoError(err)
	s.Len(byYear, 2)

	published, err := s.repo.List(s.ctx, models.StatementFilters{OwnerID: &s.owner.ID, PublishedOnly: true})
	s.Require().NoError(err)
	s.Empty(published)

	_, err = s.repo.MarkPublished(s.ctx, may.ID, time.Now().UTC())
	s.Require().NoError(err)

	published, err = s.repo.List(s.ctx, models.StatementFilters{OwnerID: &s.owner.ID, PublishedOnly: true})
	s.Require().NoError(err)
	s.Require().Len(published, 1)
	s.Equal(may.ID, published[0].ID)
}

func (s *StatementRepositorySuite) TestList_FollowsCurrentPropertyOwner() {
	s.newStatement(s.property.ID, &s.owner.ID, 2025, 6)

	previousOwnerID := s.owner.ID
	newOwner := database.CreateTestUser(s.T(), s.db, models.RoleOwner)
	s.Require().NoError(s.db.Model(s.property).Update("owner_id", newOwner.ID).Error)
	s.Require().Equal(previousOwnerID, s.owner.ID)

	previous, err := s.repo.List(s.ctx, models.StatementFilters{OwnerID: &previousOwnerID})
	s.Require().NoError(err)
	s.Empty(previous)

	current, err := s.repo.List(s.ctx, models.StatementFilters{OwnerID: &newOwner.ID})
	s.Require().NoError(err)
	s.Len(current, 1)
}

func (s *StatementRepositorySuite) TestMarkPublished_OnlyOnce() {
	statement := s.newStatement(s.property.ID, &s.owner.ID, 2025, 6)
	first := time.Date(2025, 7, 2, 8, 0, 0, 0, time.UTC)

	changed, err := s.repo.MarkPublished(s.ctx, statement.ID, first)
	s.NoError(err)
	s.True(changed)

	changed, err = s.repo.MarkPublished(s.ctx, statement.ID, first.Add(time.Hour))
	s.NoError(err)
	s.False(changed)

	found, err := s.repo.GetByID(s.ctx, statement.ID)
	s.Require().NoError(err)
	s.True(found.IsPublished)
	s.Require().NotNil(found.PublishedAt)
	s.True(found.PublishedAt.Equal(first))

	changed, err = s.repo.MarkPublished(s.ctx, uuid.New(), first)
	s.NoError(err)
	s.False(changed)
}

func (s *StatementRepositorySuite) TestUpdateNotes() {
	statement := s.newStatement(s.property.ID, &s.owner.ID, 2025, 6)

	s.NoError(s.repo.UpdateNotes(s.ctx, statement.ID, "Boiler replaced in June"))

	found, err := s.repo.GetByID(s.ctx, statement.ID)
	s.Require().NoError(err)
	s.Equal("Boiler replaced in June", found.Notes)
	s.Equal("380.00", found.TotalRevenue.StringFixed(2))

	s.ErrorIs(s.repo.UpdateNotes(s.ctx, uuid.New(), "x"), ErrStatementNotFound)
}
