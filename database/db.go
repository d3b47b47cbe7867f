package database

import (
	"fmt"
	"time"

	"museum-booking/config"
	"museum-booking/logger"
	"museum-booking/models/booking"
	"museum-booking/models/log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InitDB opens the relational store selected by cfg and migrates it.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.PostgresDSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DB.SQLitePath)
	default:
		return nil, fmt.Errorf("storage driver %q is not relational", cfg.StorageDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: cfg.Now,
	})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, fmt.Errorf("gorm open: %w", err)
	}
	logger.Success("Successfully connected to the " + cfg.StorageDriver + " database")

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB(): %w", err)
	}
	if cfg.DB.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	}
	if cfg.DB.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}
	if cfg.DB.ConnMaxLifeTime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.DB.ConnMaxLifeTime) * time.Minute)
	}

	if err := Migrate(db); err != nil {
		logger.Error("Failed to migrate the database", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	return db, nil
}

// Migrate creates or updates every table and index the service uses.
func Migrate(db *gorm.DB) error {
	if err := autoMigrate(db); err != nil {
		return err
	}
	return createIndexes(db)
}

// autoMigrate runs auto migration for all models
func autoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&booking.Booking{},
		// Logging
		&log.RequestLog{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}
	return nil
}

// IndexStatements are the indexes created on top of the model tags.
var IndexStatements = []string{
	"CREATE INDEX IF NOT EXISTS idx_bookings_created_at_desc ON bookings(created_at DESC)",
	"CREATE INDEX IF NOT EXISTS idx_bookings_tour_type_visit_date ON bookings(tour_type, visit_date)",
	"CREATE INDEX IF NOT EXISTS idx_request_logs_method ON request_logs(method)",
	"CREATE INDEX IF NOT EXISTS idx_request_logs_status_code ON request_logs(status_code)",
	"CREATE INDEX IF NOT EXISTS idx_request_logs_created_at ON request_logs(created_at)",
}

// createIndexes creates additional indexes for better performance
func createIndexes(db *gorm.DB) error {
	for _, stmt := range IndexStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index (%s): %w", stmt, err)
		}
	}
	return nil
}
