package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/intake/internal/db"
	"github.com/alexanderramin/intake/internal/repository"
	"go.uber.org/zap"
)

var (
	// ErrAlreadySeeded is returned when the database already holds data.
	ErrAlreadySeeded = errors.New("database is not empty")
	// ErrInvalidDataset wraps the validation errors of a dataset.
	ErrInvalidDataset = errors.New("invalid seed dataset")
)

// Summary counts what a seed run inserted.
type Summary struct {
	Requests     int
	Projects     int
	Tickets      int
	Requirements int
}

type Seeder struct {
	uow    db.UnitOfWork
	logger *zap.Logger
}

func NewSeeder(uow db.UnitOfWork, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{uow: uow, logger: logger.Named("seed")}
}

// Apply validates ds and inserts it in one transaction. Only an empty
// database is seeded; anything else fails with ErrAlreadySeeded.
func (s *Seeder) Apply(ctx context.Context, ds *Dataset) (*Summary, error) {
	if errs := Validate(ds); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, errors.Join(errs...))
	}
	conv := Convert(ds)

	sum := &Summary{}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var existing int
		err := tx.QueryRowContext(ctx, `SELECT
			(SELECT COUNT(*) FROM intake_requests) +
			(SELECT COUNT(*) FROM projects) +
			(SELECT COUNT(*) FROM tickets)`).Scan(&existing)
		if err != nil {
			return fmt.Errorf("checking for existing data: %w", err)
		}
		if existing > 0 {
			return ErrAlreadySeeded
		}

		requests := repository.NewSQLiteRequestRepo(tx)
		for _, r := range conv.Requests {
			if err := requests.Create(ctx, r); err != nil {
				return fmt.Errorf("seeding request %s: %w", r.ID, err)
			}
			sum.Requests++
		}
		projects := repository.NewSQLiteProjectRepo(tx)
		for _, p := range conv.Projects {
			if err := projects.Create(ctx, p); err != nil {
				return fmt.Errorf("seeding project %s: %w", p.ID, err)
			}
			sum.Projects++
		}
		tickets := repository.NewSQLiteTicketRepo(tx)
		for _, t := range conv.Tickets {
			if err := tickets.Create(ctx, t); err != nil {
				return fmt.Errorf("seeding ticket %s: %w", t.ID, err)
			}
			sum.Tickets++
			sum.Requirements += len(t.Requirements)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("seeded database",
		zap.Int("requests", sum.Requests),
		zap.Int("projects", sum.Projects),
		zap.Int("tickets", sum.Tickets),
		zap.Int("requirements", sum.Requirements),
	)
	return sum, nil
}
