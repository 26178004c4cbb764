package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rental-ops/internal/config"
	"rental-ops/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// GormConfig is shared by the postgres connection and the sqlite test database so both
// translate driver errors and stamp timestamps in UTC.
func GormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), GormConfig(logger.Warn))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.PropertyUnit{},
		&models.Reservation{},
		&models.Expense{},
		&models.OwnerStatement{},
		&models.OTPCode{},
		&models.AuditLog{},
		&models.Task{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_role ON users(role)",
		"CREATE INDEX IF NOT EXISTS idx_users_email_lower ON users(LOWER(email))",
		"CREATE INDEX IF NOT EXISTS idx_properties_owner_id ON properties(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_property_units_property_id ON property_units(property_id)",
		// Window queries filter on property then date.
		"CREATE INDEX IF NOT EXISTS idx_reservations_property_check_out ON reservations(property_id, check_out)",
		"CREATE INDEX IF NOT EXISTS idx_reservations_unit_check_out ON reservations(unit_id, check_out) WHERE unit_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_expenses_property_date ON expenses(property_id, expense_date)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_owner_statements_property_period ON owner_statements(property_id, statement_month)",
		"CREATE INDEX IF NOT EXISTS idx_owner_statements_owner_month ON owner_statements(owner_id, statement_month DESC)",
		"CREATE INDEX IF NOT EXISTS idx_otp_codes_email_created ON otp_codes(email, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_entity ON audit_logs(entity_type, entity_id)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created_at ON audit_logs(created_at)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("failed to create index", "query", query, "error", err)
		}
	}

	return nil
}

// CleanupExpiredOTPCodes deletes login codes that expired before the cutoff.
func (db *DB) CleanupExpiredOTPCodes(ctx context.Context, before time.Time) (int64, error) {
	result := db.DB.WithContext(ctx).Where("expires_at < ?", before).Delete(&models.OTPCode{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to cleanup expired otp codes: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// SeedAdminUser creates the first admin account. It returns the existing user when the email is taken.
func (db *DB) SeedAdminUser(email, firstName, lastName string) (*models.User, error) {
	var existingUser models.User
	if err := db.DB.Where("email = ?", models.NormalizeEmail(email)).First(&existingUser).Error; err == nil {
		return &existingUser, nil
	}

	user := &models.User{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      models.RoleAdmin,
	}

	if err := db.DB.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	return user, nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(sqlDB, &cfg.Database); err != nil {
		slog.Warn("migration runner failed, falling back to gorm AutoMigrate", "error", err)

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	} else if !cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("failed to create some indexes", "error", err)
	}

	slog.Info("database initialized")

	return db, nil
}
