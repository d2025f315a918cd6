package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the embedded migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Profile table
		CREATE TABLE profile (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			age INTEGER NOT NULL,
			salary FLOAT NOT NULL,
			current_cash FLOAT NOT NULL DEFAULT 0,
			investment_assets FLOAT NOT NULL DEFAULT 0,
			yearly_savings_rate FLOAT NOT NULL,
			risk_appetite VARCHAR(10) NOT NULL,
			target_retire_age INTEGER NOT NULL,
			target_monthly_income FLOAT NOT NULL,
			description TEXT,
			advisor_id VARCHAR(36)
		);

		-- Saved scenario table
		CREATE TABLE saved_scenario (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			name VARCHAR(200) NOT NULL,
			description TEXT NOT NULL,
			timeframe_months INTEGER NOT NULL,
			projection_json TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX idx_saved_scenario_user ON saved_scenario(user_id);

		-- Scenario share table
		CREATE TABLE scenario_share (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			advisor_id VARCHAR(36) NOT NULL,
			scenario_description TEXT NOT NULL,
			analysis_json TEXT NOT NULL,
			consent_status VARCHAR(10) NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX idx_scenario_share_advisor ON scenario_share(advisor_id, user_id);
	`

	_, err := db.Exec(schema)
	return err
}
