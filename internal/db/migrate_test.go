package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time; it should succeed without error.
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"intake_requests", "projects", "tickets", "ticket_requirements"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestMigrate_UniqueTicketPerRequest(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO intake_requests (id, title, business_context, impact_area, urgency, requester_name, created_at, updated_at)
		VALUES ('r1', 't', 'c', 'product', 'low', 'A', 'x', 'x')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO projects (id, name, created_at) VALUES ('p1', 'P', 'x'), ('p2', 'Q', 'x')`)
	require.NoError(t, err)

	insert := `INSERT INTO tickets (id, project_id, intake_request_id, title, created_at, updated_at) VALUES (?, ?, ?, 't', 'x', 'x')`
	_, err = db.Exec(insert, "t1", "p1", "r1")
	require.NoError(t, err)
	_, err = db.Exec(insert, "t2", "p2", "r1")
	require.Error(t, err, "second ticket for the same request must be rejected")
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")

	// Ad-hoc tickets (no request) are not constrained.
	_, err = db.Exec(insert, "t3", "p1", nil)
	require.NoError(t, err)
	_, err = db.Exec(insert, "t4", "p1", nil)
	require.NoError(t, err)
}

func TestMigrate_RejectsUnknownEnumValues(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO projects (id, name, created_at) VALUES ('p1', 'P', 'x')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO tickets (id, project_id, title, board_column, created_at, updated_at)
		VALUES ('t1', 'p1', 't', 'blocked', 'x', 'x')`)
	assert.Error(t, err)
}
