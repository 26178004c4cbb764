package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"rental-ops/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm duplicated key", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"pq unique", &pq.Error{Code: "23505"}, true},
		{"pq foreign key", &pq.Error{Code: "23503"}, false},
		{"pgconn unique wrapped", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}), true},
		{"pgconn not null", &pgconn.PgError{Code: "23502"}, false},
		{"sqlite unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, true},
		{"sqlite not null", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, false},
		{"message fallback", errors.New(`ERROR: duplicate key value violates unique constraint "idx"`), true},
		{"other", errors.New("connection reset"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}

func TestNormalizePagination(t *testing.T) {
	offset, limit := normalizePagination(-5, 0)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 50, limit)

	offset, limit = normalizePagination(20, 5000)
	assert.Equal(t, 20, offset)
	assert.Equal(t, 50, limit)

	_, limit = normalizePagination(0, 1000)
	assert.Equal(t, 1000, limit)
}

func newMockPostgres(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepository_Create_PostgresUniqueViolation(t *testing.T) {
	driverErrors := map[string]error{
		"lib/pq": &pq.Error{Code: "23505", Message: `duplicate key value violates unique constraint "users_email_key"`},
		"pgconn": &pgconn.PgError{Code: "23505", Message: `duplicate key value violates unique constraint "users_email_key"`},
	}

	for name, driverErr := range driverErrors {
		t.Run(name, func(t *testing.T) {
			db, mock := newMockPostgres(t)
			mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).WillReturnError(driverErr)

			repo := NewUserRepository(db)
			err := repo.Create(context.Background(), &models.User{
				Email:     "owner@example.com",
				FirstName: "Dana",
				LastName:  "Levi",
				Role:      models.RoleOwner,
			})

			assert.ErrorIs(t, err, ErrUserAlreadyExists)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStatementRepository_MarkPublished_PostgresError(t *testing.T) {
	db, mock := newMockPostgres(t)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "owner_statements"`)).WillReturnError(&pq.Error{Code: "57014", Message: "canceling statement due to user request"})

	repo := NewStatementRepository(db)
	ok, err := repo.MarkPublished(context.Background(), uuid.New(), models.StatementPeriod{Year: 2025, Month: 6}.FirstDay())

	assert.False(t, ok)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrStatementNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
