package repositories

import (
	"context"
	"testing"
	"time"

	"rental-ops/internal/database"
	"rental-ops/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
	ctx  context.Context
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserRepositorySuite) TestUserRepository_Create() {
	user := &models.User{
		Email:     "owner@example.com",
		FirstName: "Dana",
		LastName:  "Levi",
		Role:      models.RoleOwner,
	}

	err := s.repo.Create(s.ctx, user)
	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
	s.NotZero(user.CreatedAt)
	s.NotZero(user.UpdatedAt)
}

func (s *UserRepositorySuite) TestUserRepository_Create_DuplicateEmail() {
	first := &models.User{Email: "dup@example.com", FirstName: "A", LastName: "B", Role: models.RoleOwner}
	s.Require().NoError(s.repo.Create(s.ctx, first))

	second := &models.User{Email: " DUP@example.com ", FirstName: "C", LastName: "D", Role: models.RoleCleaner}
	err := s.repo.Create(s.ctx, second)
	s.ErrorIs(err, ErrUserAlreadyExists)
}

func (s *UserRepositorySuite) TestUserRepository_Create_Nil() {
	s.Error(s.repo.Create(s.ctx, nil))
}

func (s *UserRepositorySuite) TestUserRepository_GetByEmail() {
	user := database.CreateTestUser(s.T(), s.db, models.RoleOwner)

	found, err := s.repo.GetByEmail(s.ctx, "  "+user.Email+" ")
	s.NoError(err)
	s.Equal(user.ID, found.ID)

	_, err = s.repo.GetByEmail(s.ctx, "nonexistent@example.com")
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositorySuite) TestUserRepository_GetByID() {
	user := database.CreateTestUser(s.T(), s.db, models.RoleCleaner)

	found, err := s.repo.GetByID(s.ctx, user.ID)
	s.NoError(err)
	s.Equal(user.Email, found.Email)
	s.Equal(models.RoleCleaner, found.Role)

	_, err = s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositorySuite) TestUserRepository_UpdateLastLogin() {
	user := database.CreateTestUser(s.T(), s.db, models.RoleOwner)
	at := time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC)

	s.NoError(s.repo.UpdateLastLogin(s.ctx, user.ID, at))

	found, err := s.repo.GetByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found.LastLoginAt)
	s.True(found.LastLoginAt.Equal(at))

	s.ErrorIs(s.repo.UpdateLastLogin(s.ctx, uuid.New(), at), ErrUserNotFound)
}

func (s *UserRepositorySuite) TestUserRepository_ListUsers() {
	for i := 0; i < 3; i++ {
		database.CreateTestUser(s.T(), s.db, models.RoleOwner)
	}
	database.CreateTestAdminUser(s.T(), s.db)

	owners, total, err := s.repo.ListUsers(s.ctx, models.RoleOwner, 0, 2)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(owners, 2)
	for _, u := range owners {
		s.Equal(models.RoleOwner, u.Role)
	}

	all, total, err := s.repo.ListUsers(s.ctx, "", 0, 0)
	s.NoError(err)
	s.Equal(int64(4), total)
	s.Len(all, 4)
}
