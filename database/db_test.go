package database

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"museum-booking/config"
)

func TestInitDB_SQLite(t *testing.T) {
	cfg := &config.Config{
		StorageDriver: config.DriverSQLite,
		Location:      time.UTC,
		DB: config.DBConfig{
			MaxOpenConns: 1,
			SQLitePath:   filepath.Join(t.TempDir(), "museum.db"),
		},
	}

	db, err := InitDB(cfg)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	for _, table := range []string{"bookings", "request_logs"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table %s was not created", table)
		}
	}
	if !db.Migrator().HasIndex("bookings", "idx_bookings_tour_type_visit_date") {
		t.Error("composite index was not created")
	}

	// migrating an up-to-date schema is a no-op
	if err := Migrate(db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestInitDB_RejectsDocumentDriver(t *testing.T) {
	cfg := &config.Config{StorageDriver: config.DriverMongo, Location: time.UTC}
	if _, err := InitDB(cfg); err == nil || !strings.Contains(err.Error(), "not relational") {
		t.Fatalf("expected not relational error, got %v", err)
	}
}

func TestIndexStatementsAreIdempotent(t *testing.T) {
	for _, stmt := range IndexStatements {
		if !strings.Contains(stmt, "IF NOT EXISTS") {
			t.Errorf("statement is not idempotent: %s", stmt)
		}
	}
}
