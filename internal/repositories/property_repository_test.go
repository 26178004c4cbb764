package repositories

import (
	"context"
	"testing"

	"rental-ops/internal/database"
	"rental-ops/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestPropertyRepository(t *testing.T) {
	suite.Run(t, new(PropertyRepositorySuite))
}

type PropertyRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo PropertyRepositoryInterface
	ctx  context.Context
}

func (s *PropertyRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewPropertyRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *PropertyRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *PropertyRepositorySuite) TestCreateAndGetByID() {
	owner := database.CreateTestUser(s.T(), s.db, models.RoleOwner)
	property := &models.Property{
		Name:      "Old City Studio",
		Address:   "12 Jaffa Rd",
		City:      "Jerusalem",
		OwnerID:   &owner.ID,
		Bedrooms:  1,
		Bathrooms: decimal.RequireFromString("1.5"),
		IsActive:  true,
	}

	s.Require().NoError(s.repo.Create(s.ctx, property))
	s.NotEqual(uuid.Nil, property.ID)

	found, err := s.repo.GetByID(s.ctx, property.ID)
	s.Require().NoError(err)
	s.Equal("Old City Studio", found.Name)
	s.True(found.Bathrooms.Equal(decimal.RequireFromString("1.5")))
	s.Require().NotNil(found.Owner)
	s.Equal(owner.ID, found.Owner.ID)
	s.True(found.IsOwnedBy(owner.ID))
}

func (s *PropertyRepositorySuite) TestCreate_Invalid() {
	s.Error(s.repo.Create(s.ctx, nil))
	s.Error(s.repo.Create(s.ctx, &models.Property{Name: "  "}))
}

func (s *PropertyRepositorySuite) TestGetByID_Unmanaged() {
	property := database.CreateTestProperty(s.T(), s.db, nil)

	found, err := s.repo.GetByID(s.ctx, property.ID)
	s.Require().NoError(err)
	s.Nil(found.OwnerID)
	s.Nil(found.Owner)
}

func (s *PropertyRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrPropertyNotFound)
}

func (s *PropertyRepositorySuite) TestList_Filters() {
	owner := database.CreateTestUser(s.T(), s.db, models.RoleOwner)
	mine := database.CreateTestProperty(s.T(), s.db, &owner.ID)
	database.CreateTestProperty(s.T(), s.db, nil)

	inactive := database.CreateTestProperty(s.T(), s.db, &owner.ID)
	s.Require().NoError(s.db.Model(inactive).Update("is_active", false).Error)

	all, err := s.repo.List(s.ctx, models.PropertyFilters{})
	s.NoError(err)
	s.Len(all, 3)

	owned, err := s.repo.List(s.ctx, models.PropertyFilters{OwnerID: &owner.ID})
	s.NoError(err)
	s.Len(owned, 2)

	active, err := s.repo.List(s.ctx, models.PropertyFilters{OwnerID: &owner.ID, ActiveOnly: true})
	s.NoError(err)
	s.Require().Len(active, 1)
	s.Equal(mine.ID, active[0].ID)
}

func (s *PropertyRepositorySuite) TestUnits() {
	property := database.CreateTestProperty(s.T(), s.db, nil)

	s.Require().NoError(s.repo.CreateUnit(s.ctx, &models.PropertyUnit{PropertyID: property.ID, Name: "Unit B"}))
	s.Require().NoError(s.repo.CreateUnit(s.ctx, &models.PropertyUnit{PropertyID: property.ID, Name: "Unit A"}))
	s.Error(s.repo.CreateUnit(s.ctx, &models.PropertyUnit{PropertyID: property.ID}))

	units, err := s.repo.ListUnits(s.ctx, property.ID)
	s.NoError(err)
	s.Require().Len(units, 2)
	s.Equal("Unit A", units[0].Name)

	listed, err := s.repo.List(s.ctx, models.PropertyFilters{})
	s.NoError(err)
	s.Require().Len(listed, 1)
	s.Len(listed[0].Units, 2)
}
