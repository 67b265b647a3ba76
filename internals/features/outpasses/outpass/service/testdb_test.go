// file: internals/features/outpasses/outpass/service/testdb_test.go
package service

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB returns an in-memory sqlite handle with the outpass tables laid
// out by hand. Postgres-only DDL (gen_random_uuid, uuid columns) does not
// survive AutoMigrate here, so the schema is declared with sqlite equivalents.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// An in-memory database lives and dies with its connection, so the pool
	// must stay on a single one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	ddl := []string{
		`CREATE TABLE outpasses (
			outpass_id TEXT PRIMARY KEY,
			outpass_status TEXT NOT NULL,
			outpass_exit_code TEXT,
			outpass_return_code TEXT,
			outpass_outgoing_date TEXT,
			outpass_is_priority INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE outpass_approvals (
			outpass_approval_id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			outpass_approval_outpass_id TEXT NOT NULL,
			outpass_approval_approver_role TEXT NOT NULL,
			outpass_approval_approver_id TEXT,
			outpass_approval_status TEXT NOT NULL DEFAULT 'PENDING',
			outpass_approval_comments TEXT,
			outpass_approval_fee_amount REAL,
			outpass_approval_meeting_date DATETIME,
			outpass_approval_created_at DATETIME,
			outpass_approval_updated_at DATETIME,
			UNIQUE (outpass_approval_outpass_id, outpass_approval_approver_role)
		)`,
	}
	for _, stmt := range ddl {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create table: %v", err)
		}
	}
	return db
}

// seedOutpass inserts a minimal row directly; the remaining columns play no
// part in code lookup or ledger behaviour.
func seedOutpass(t *testing.T, db *gorm.DB, id, status, exitCode, returnCode string) {
	t.Helper()
	err := db.Exec(
		`INSERT INTO outpasses (outpass_id, outpass_status, outpass_exit_code, outpass_return_code)
		 VALUES (?, ?, NULLIF(?, ''), NULLIF(?, ''))`,
		id, status, exitCode, returnCode,
	).Error
	if err != nil {
		t.Fatalf("seed outpass: %v", err)
	}
}
