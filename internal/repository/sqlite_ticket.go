package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/intake/internal/db"
	"github.com/alexanderramin/intake/internal/domain"
)

const ticketColumns = `id, project_id, intake_request_id, title, business_context,
		impact_area, urgency, board_column, assignee, created_at, updated_at`

// SQLiteTicketRepo implements TicketRepo using a SQLite database. Requirements
// live in ticket_requirements and are always read and written with their
// ticket; callers wrap writes in a UnitOfWork so the pair stays consistent.
type SQLiteTicketRepo struct {
	db db.DBTX
}

// NewSQLiteTicketRepo creates a new SQLiteTicketRepo.
func NewSQLiteTicketRepo(conn db.DBTX) *SQLiteTicketRepo {
	return &SQLiteTicketRepo{db: conn}
}

// Create inserts the ticket and its requirements. A second ticket for the
// same intake request fails with ErrDuplicate.
func (r *SQLiteTicketRepo) Create(ctx context.Context, t *domain.Ticket) error {
	query := `INSERT INTO tickets (` + ticketColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ProjectID,
		nullableString(t.IntakeRequestID),
		t.Title,
		t.BusinessContext,
		string(t.ImpactArea),
		string(t.Urgency),
		string(t.Column),
		nullableString(t.Assignee),
		formatTime(t.CreatedAt),
		formatTime(t.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("ticket %q: %w", t.ID, ErrDuplicate)
		}
		return fmt.Errorf("inserting ticket: %w", err)
	}
	return r.insertRequirements(ctx, t.ID, t.Requirements)
}

func (r *SQLiteTicketRepo) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = ?`
	return r.getOne(ctx, query, id, domain.NotFound("ticket", id))
}

func (r *SQLiteTicketRepo) GetByIntakeRequest(ctx context.Context, intakeRequestID string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE intake_request_id = ?`
	return r.getOne(ctx, query, intakeRequestID,
		fmt.Errorf("ticket for intake request %q: %w", intakeRequestID, ErrNotFound))
}

func (r *SQLiteTicketRepo) getOne(ctx context.Context, query, arg string, notFound error) (*domain.Ticket, error) {
	t, err := scanTicket(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound
		}
		return nil, err
	}
	reqs, err := r.listRequirements(ctx, `WHERE ticket_id = ?`, t.ID)
	if err != nil {
		return nil, err
	}
	t.Requirements = reqs[t.ID]
	if t.Requirements == nil {
		t.Requirements = []domain.Requirement{}
	}
	return t, nil
}

// ListByProject returns the project's tickets in insertion order.
func (r *SQLiteTicketRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE project_id = ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing tickets by project: %w", err)
	}
	defer rows.Close()

	var tickets []*domain.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tickets: %w", err)
	}
	if len(tickets) == 0 {
		return tickets, nil
	}

	reqs, err := r.listRequirements(ctx,
		`WHERE ticket_id IN (SELECT id FROM tickets WHERE project_id = ?)`, projectID)
	if err != nil {
		return nil, err
	}
	for _, t := range tickets {
		t.Requirements = reqs[t.ID]
		if t.Requirements == nil {
			t.Requirements = []domain.Requirement{}
		}
	}
	return tickets, nil
}

// CountByProject derives {total, done} from the project's tickets.
func (r *SQLiteTicketRepo) CountByProject(ctx context.Context, projectID string) (domain.TicketCounts, error) {
	var c domain.TicketCounts
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN board_column = 'done' THEN 1 ELSE 0 END), 0)
		FROM tickets WHERE project_id = ?`, projectID).Scan(&c.Total, &c.Done)
	if err != nil {
		return domain.TicketCounts{}, fmt.Errorf("counting tickets: %w", err)
	}
	return c, nil
}

// Update writes the mutable ticket fields and replaces the requirement list.
// Project ownership, the request link and createdAt are never rewritten.
func (r *SQLiteTicketRepo) Update(ctx context.Context, t *domain.Ticket) error {
	query := `UPDATE tickets SET title = ?, business_context = ?, impact_area = ?, urgency = ?,
		board_column = ?, assignee = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.BusinessContext,
		string(t.ImpactArea),
		string(t.Urgency),
		string(t.Column),
		nullableString(t.Assignee),
		formatTime(t.UpdatedAt),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating ticket: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFound("ticket", t.ID)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM ticket_requirements WHERE ticket_id = ?`, t.ID); err != nil {
		return fmt.Errorf("clearing ticket requirements: %w", err)
	}
	return r.insertRequirements(ctx, t.ID, t.Requirements)
}

func (r *SQLiteTicketRepo) insertRequirements(ctx context.Context, ticketID string, reqs []domain.Requirement) error {
	for i, req := range reqs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO ticket_requirements (ticket_id, id, position, text, completed) VALUES (?, ?, ?, ?, ?)`,
			ticketID, req.ID, i, req.Text, boolToInt(req.Completed),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("requirement %q: %w", req.ID, ErrDuplicate)
			}
			return fmt.Errorf("inserting requirement: %w", err)
		}
	}
	return nil
}

// listRequirements loads requirements matching where, grouped by ticket id
// and ordered by position.
func (r *SQLiteTicketRepo) listRequirements(ctx context.Context, where string, args ...any) (map[string][]domain.Requirement, error) {
	query := `SELECT ticket_id, id, text, completed FROM ticket_requirements ` + where +
		` ORDER BY ticket_id, position`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing requirements: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.Requirement)
	for rows.Next() {
		var ticketID string
		var req domain.Requirement
		var completed int
		if err := rows.Scan(&ticketID, &req.ID, &req.Text, &completed); err != nil {
			return nil, fmt.Errorf("scanning requirement: %w", err)
		}
		req.Completed = intToBool(completed)
		out[ticketID] = append(out[ticketID], req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating requirements: %w", err)
	}
	return out, nil
}

func scanTicket(row rowScanner) (*domain.Ticket, error) {
	var t domain.Ticket
	var requestID, assignee sql.NullString
	var area, urgency, column, createdAt, updatedAt string

	err := row.Scan(
		&t.ID, &t.ProjectID, &requestID, &t.Title, &t.BusinessContext,
		&area, &urgency, &column, &assignee, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning ticket: %w", err)
	}

	t.IntakeRequestID = stringPtr(requestID)
	t.Assignee = stringPtr(assignee)
	t.ImpactArea = domain.ImpactArea(area)
	t.Urgency = domain.Urgency(urgency)
	t.Column = domain.Column(column)

	if t.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
