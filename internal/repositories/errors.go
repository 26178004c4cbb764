package repositories

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrPropertyNotFound    = errors.New("property not found")
	ErrUnitNotFound        = errors.New("property unit not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrStatementNotFound   = errors.New("statement not found")
	ErrDuplicateStatement  = errors.New("statement already exists for this period")
	ErrOTPCodeNotFound     = errors.New("otp code not found")
	ErrAuditLogNotFound    = errors.New("audit log not found")
	ErrTaskNotFound        = errors.New("task not found")
)

// isUniqueViolation reports whether err is a unique constraint failure from any supported driver,
// translated by gorm or not.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgUniqueViolation
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, pgUniqueViolation)
}

func normalizePagination(offset, limit int) (int, int) {
	if limit <= 0 || limit > 1000 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
