package database

import (
	"fmt"
	"testing"
	"time"

	"rental-ops/internal/config"
	"rental-ops/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTables = []string{
	"tasks",
	"audit_logs",
	"otp_codes",
	"owner_statements",
	"expenses",
	"reservations",
	"property_units",
	"properties",
	"users",
}

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), GormConfig(logger.Silent))
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Every new connection to :memory: opens a fresh empty database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

func SetupTestDB(t *testing.T) *DB {
	t.Helper()
	return openTestDB(t)
}

func CreateTestUser(t *testing.T, db *DB, role string) *models.User {
	t.Helper()

	user := &models.User{
		Email:     gofakeit.Email(),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Phone:     gofakeit.Phone(),
		Role:      role,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestAdminUser(t *testing.T, db *DB) *models.User {
	t.Helper()
	return CreateTestUser(t, db, models.RoleAdmin)
}

// CreateTestProperty creates an active property. Pass nil ownerID for an unmanaged property.
func CreateTestProperty(t *testing.T, db *DB, ownerID *uuid.UUID) *models.Property {
	t.Helper()

	// The property keeps its own copy of the owner id.
	var owner *uuid.UUID
	if ownerID != nil {
		id := *ownerID
		owner = &id
	}

	property := &models.Property{
		Name:      gofakeit.Street() + " Apartment",
		Address:   gofakeit.Street(),
		City:      gofakeit.City(),
		OwnerID:   owner,
		Bedrooms:  gofakeit.IntRange(1, 4),
		Bathrooms: decimal.NewFromInt(int64(gofakeit.IntRange(1, 2))),
		IsActive:  true,
	}

	if err := db.Create(property).Error; err != nil {
		t.Fatalf("failed to create test property: %v", err)
	}

	return property
}

func CreateTestUnit(t *testing.T, db *DB, propertyID uuid.UUID, name string) *models.PropertyUnit {
	t.Helper()

	unit := &models.PropertyUnit{PropertyID: propertyID, Name: name}
	if err := db.Create(unit).Error; err != nil {
		t.Fatalf("failed to create test unit: %v", err)
	}
	return unit
}

// CreateTestReservation books a stay ending on checkOut. A nil amount stores NULL.
func CreateTestReservation(t *testing.T, db *DB, propertyID uuid.UUID, checkIn, checkOut time.Time, amount *decimal.Decimal) *models.Reservation {
	t.Helper()

	reservation := &models.Reservation{
		PropertyID: propertyID,
		GuestName:  gofakeit.Name(),
		GuestEmail: gofakeit.Email(),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Platform:   models.PlatformAirbnb,
	}
	if amount != nil {
		reservation.TotalAmount = decimal.NewNullDecimal(*amount)
	}

	if err := db.Create(reservation).Error; err != nil {
		t.Fatalf("failed to create test reservation: %v", err)
	}

	return reservation
}

func CreateTestExpense(t *testing.T, db *DB, propertyID uuid.UUID, date time.Time, amount decimal.Decimal, billable bool) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		PropertyID:  propertyID,
		Category:    models.ExpenseCategoryCleaning,
		Description: gofakeit.Sentence(4),
		Amount:      amount,
		ExpenseDate: date,
		IsBillable:  billable,
	}

	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}

	return expense
}

// CreateTestTask schedules a turnover clean with the default checklist. Pass nil assignee for an unassigned task.
func CreateTestTask(t *testing.T, db *DB, propertyID uuid.UUID, assignee *uuid.UUID, scheduled time.Time) *models.Task {
	t.Helper()

	var assignedTo *uuid.UUID
	if assignee != nil {
		id := *assignee
		assignedTo = &id
	}

	task := &models.Task{
		PropertyID:    propertyID,
		AssignedTo:    assignedTo,
		TaskType:      models.TaskTypeTurnoverClean,
		Title:         "Turnover clean " + gofakeit.Word(),
		ScheduledDate: scheduled,
		Checklist:     models.DefaultChecklist(models.TaskTypeTurnoverClean),
	}

	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to create test task: %v", err)
	}

	return task
}

type TestDB struct {
	*DB
	t *testing.T
}

func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	return &TestDB{
		DB: openTestDB(t),
		t:  t,
	}
}

func (tdb *TestDB) Cleanup() {
	tdb.t.Helper()
	CleanupTestDB(tdb.t, tdb.DB)
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range testTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
