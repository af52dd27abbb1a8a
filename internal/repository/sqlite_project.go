package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/intake/internal/db"
	"github.com/alexanderramin/intake/internal/domain"
)

const projectColumns = `id, name, description, archived, created_at`

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		nullableString(p.Description),
		boolToInt(p.Archived),
		formatTime(p.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("project %q: %w", p.ID, ErrDuplicate)
		}
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	p, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("project", id)
	}
	return p, err
}

// List returns all projects, archived included, most recent first.
func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC, rowid DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

// ListWithCounts returns every project with its ticket totals in one query.
func (r *SQLiteProjectRepo) ListWithCounts(ctx context.Context) ([]ProjectSummary, error) {
	query := `SELECT p.id, p.name, p.description, p.archived, p.created_at,
			COUNT(t.id),
			COALESCE(SUM(CASE WHEN t.board_column = 'done' THEN 1 ELSE 0 END), 0)
		FROM projects p
		LEFT JOIN tickets t ON t.project_id = p.id
		GROUP BY p.id
		ORDER BY p.created_at DESC, p.rowid DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects with counts: %w", err)
	}
	defer rows.Close()

	var out []ProjectSummary
	for rows.Next() {
		var s ProjectSummary
		var desc sql.NullString
		var archived int
		var createdAt string
		if err := rows.Scan(&s.Project.ID, &s.Project.Name, &desc, &archived, &createdAt,
			&s.Counts.Total, &s.Counts.Done); err != nil {
			return nil, fmt.Errorf("scanning project summary: %w", err)
		}
		s.Project.Description = stringPtr(desc)
		s.Project.Archived = intToBool(archived)
		if s.Project.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project summaries: %w", err)
	}
	return out, nil
}

// ToggleArchived flips the archived flag in a single statement.
func (r *SQLiteProjectRepo) ToggleArchived(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE projects SET archived = 1 - archived WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("toggling project archive: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFound("project", id)
	}
	return nil
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var desc sql.NullString
	var archived int
	var createdAt string

	if err := row.Scan(&p.ID, &p.Name, &desc, &archived, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	p.Description = stringPtr(desc)
	p.Archived = intToBool(archived)

	var err error
	if p.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	return &p, nil
}
