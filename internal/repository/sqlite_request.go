package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/intake/internal/db"
	"github.com/alexanderramin/intake/internal/domain"
)

const requestColumns = `id, title, business_context, impact_area, urgency, requester_name,
		status, review_note, created_at, updated_at`

// SQLiteRequestRepo implements RequestRepo using a SQLite database.
type SQLiteRequestRepo struct {
	db db.DBTX
}

// NewSQLiteRequestRepo creates a new SQLiteRequestRepo.
func NewSQLiteRequestRepo(conn db.DBTX) *SQLiteRequestRepo {
	return &SQLiteRequestRepo{db: conn}
}

func (r *SQLiteRequestRepo) Create(ctx context.Context, req *domain.IntakeRequest) error {
	query := `INSERT INTO intake_requests (` + requestColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		req.ID,
		req.Title,
		req.BusinessContext,
		string(req.ImpactArea),
		string(req.Urgency),
		req.RequesterName,
		string(req.Status),
		nullableString(req.ReviewNote),
		formatTime(req.CreatedAt),
		formatTime(req.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("intake request %q: %w", req.ID, ErrDuplicate)
		}
		return fmt.Errorf("inserting intake request: %w", err)
	}
	return nil
}

func (r *SQLiteRequestRepo) GetByID(ctx context.Context, id string) (*domain.IntakeRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM intake_requests WHERE id = ?`
	req, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("intake request", id)
	}
	return req, err
}

// List returns all requests, most recently updated first.
func (r *SQLiteRequestRepo) List(ctx context.Context) ([]*domain.IntakeRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM intake_requests
		ORDER BY updated_at DESC, rowid DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing intake requests: %w", err)
	}
	defer rows.Close()
	return scanRequests(rows)
}

func (r *SQLiteRequestRepo) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]*domain.IntakeRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM intake_requests
		WHERE status = ? ORDER BY updated_at DESC, rowid DESC`
	rows, err := r.db.QueryContext(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("listing intake requests by status: %w", err)
	}
	defer rows.Close()
	return scanRequests(rows)
}

// CountByStatus returns a count for every status, including zero counts.
func (r *SQLiteRequestRepo) CountByStatus(ctx context.Context) (map[domain.RequestStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM intake_requests GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("counting intake requests: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.RequestStatus]int, len(domain.RequestStatuses))
	for _, s := range domain.RequestStatuses {
		counts[s] = 0
	}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scanning status count: %w", err)
		}
		counts[domain.RequestStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating status counts: %w", err)
	}
	return counts, nil
}

// Update writes the triage-mutable fields. Title, context and createdAt are
// never rewritten.
func (r *SQLiteRequestRepo) Update(ctx context.Context, req *domain.IntakeRequest) error {
	query := `UPDATE intake_requests SET status = ?, review_note = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(req.Status),
		nullableString(req.ReviewNote),
		formatTime(req.UpdatedAt),
		req.ID,
	)
	if err != nil {
		return fmt.Errorf("updating intake request: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFound("intake request", req.ID)
	}
	return nil
}

func scanRequest(row rowScanner) (*domain.IntakeRequest, error) {
	var req domain.IntakeRequest
	var area, urgency, status, createdAt, updatedAt string
	var note sql.NullString

	err := row.Scan(
		&req.ID, &req.Title, &req.BusinessContext, &area, &urgency, &req.RequesterName,
		&status, &note, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning intake request: %w", err)
	}

	req.ImpactArea = domain.ImpactArea(area)
	req.Urgency = domain.Urgency(urgency)
	req.Status = domain.RequestStatus(status)
	req.ReviewNote = stringPtr(note)

	if req.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	if req.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &req, nil
}

func scanRequests(rows *sql.Rows) ([]*domain.IntakeRequest, error) {
	var out []*domain.IntakeRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating intake requests: %w", err)
	}
	return out, nil
}
