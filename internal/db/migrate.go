package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list is replayed on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS intake_requests (
		id               TEXT PRIMARY KEY,
		title            TEXT NOT NULL,
		business_context TEXT NOT NULL,
		impact_area      TEXT NOT NULL
		                 CHECK(impact_area IN ('product','engineering','operations','design','other')),
		urgency          TEXT NOT NULL
		                 CHECK(urgency IN ('low','medium','high','critical')),
		requester_name   TEXT NOT NULL,
		status           TEXT NOT NULL DEFAULT 'new'
		                 CHECK(status IN ('new','under_review','accepted','deferred','rejected')),
		review_note      TEXT,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_intake_requests_updated ON intake_requests(updated_at)`,
	`CREATE INDEX IF NOT EXISTS idx_intake_requests_status ON intake_requests(status)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT,
		archived    INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_archived ON projects(archived)`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id                TEXT PRIMARY KEY,
		project_id        TEXT NOT NULL REFERENCES projects(id),
		intake_request_id TEXT REFERENCES intake_requests(id),
		title             TEXT NOT NULL,
		business_context  TEXT NOT NULL DEFAULT '',
		impact_area       TEXT NOT NULL DEFAULT 'other'
		                  CHECK(impact_area IN ('product','engineering','operations','design','other')),
		urgency           TEXT NOT NULL DEFAULT 'medium'
		                  CHECK(urgency IN ('low','medium','high','critical')),
		board_column      TEXT NOT NULL DEFAULT 'backlog'
		                  CHECK(board_column IN ('backlog','in_progress','in_review','done')),
		assignee          TEXT,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tickets_project ON tickets(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tickets_project_column ON tickets(project_id, board_column)`,
	// At most one ticket per intake request, enforced by the store rather
	// than by the check-then-insert sequence in the conversion workflow.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_tickets_intake_request
		ON tickets(intake_request_id) WHERE intake_request_id IS NOT NULL`,
	`CREATE TABLE IF NOT EXISTS ticket_requirements (
		ticket_id TEXT NOT NULL REFERENCES tickets(id) ON DELETE CASCADE,
		id        TEXT NOT NULL,
		position  INTEGER NOT NULL,
		text      TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (ticket_id, id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ticket_requirements_order ON ticket_requirements(ticket_id, position)`,
}
