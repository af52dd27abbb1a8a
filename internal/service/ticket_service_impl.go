package service

import (
	"context"
	"time"

	"github.com/alexanderramin/intake/internal/db"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/repository"
)

type ticketService struct {
	tickets  repository.TicketRepo
	projects repository.ProjectRepo
	uow      db.UnitOfWork
	settings
}

func NewTicketService(tickets repository.TicketRepo, projects repository.ProjectRepo, uow db.UnitOfWork, opts ...Option) TicketService {
	return &ticketService{tickets: tickets, projects: projects, uow: uow, settings: newSettings(opts)}
}

func (s *ticketService) ListByProject(ctx context.Context, projectID string) ([]*domain.Ticket, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.tickets.ListByProject(ctx, projectID)
}

// Board groups the project's tickets into the four columns. Every column is
// present even when empty; tickets keep insertion order within a column.
func (s *ticketService) Board(ctx context.Context, projectID string) (*Board, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	tickets, err := s.tickets.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	byColumn := make(map[domain.Column][]*domain.Ticket, len(domain.Columns))
	for _, t := range tickets {
		byColumn[t.Column] = append(byColumn[t.Column], t)
	}
	b := &Board{Project: p, Columns: make([]BoardColumn, 0, len(domain.Columns))}
	for _, c := range domain.Columns {
		col := BoardColumn{Column: c, Tickets: byColumn[c]}
		if col.Tickets == nil {
			col.Tickets = []*domain.Ticket{}
		}
		b.Columns = append(b.Columns, col)
	}
	return b, nil
}

func (s *ticketService) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

func (s *ticketService) GetByIntakeRequest(ctx context.Context, intakeRequestID string) (*domain.Ticket, error) {
	return s.tickets.GetByIntakeRequest(ctx, intakeRequestID)
}

// Create adds an ad-hoc ticket to the backlog of an existing project.
func (s *ticketService) Create(ctx context.Context, projectID, title, businessContext string) (t *domain.Ticket, err error) {
	fields := map[string]any{"project_id": projectID}
	defer observe(ctx, s.observer, "create-ticket", time.Now(), fields, &err)

	t, err = domain.NewAdHocTicket(s.newID(), projectID, title, businessContext, s.now())
	if err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteProjectRepo(tx).GetByID(ctx, projectID); err != nil {
			return err
		}
		return repository.NewSQLiteTicketRepo(tx).Create(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	fields["ticket_id"] = t.ID
	return t, nil
}

func (s *ticketService) Move(ctx context.Context, id string, column domain.Column) (*domain.Ticket, error) {
	if _, err := domain.ParseColumn(string(column)); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "move-ticket", id, map[string]any{"column": string(column)},
		func(t *domain.Ticket, now time.Time) error {
			return t.MoveTo(column, now)
		})
}

func (s *ticketService) Assign(ctx context.Context, id, assignee string) (*domain.Ticket, error) {
	return s.mutate(ctx, "assign-ticket", id, map[string]any{},
		func(t *domain.Ticket, now time.Time) error {
			t.AssignTo(assignee, now)
			return nil
		})
}

func (s *ticketService) AddRequirement(ctx context.Context, ticketID, text string) (*domain.Ticket, error) {
	reqID := domain.RequirementID(s.newID())
	return s.mutate(ctx, "add-requirement", ticketID, map[string]any{"requirement_id": reqID},
		func(t *domain.Ticket, now time.Time) error {
			_, err := t.AddRequirement(reqID, text, now)
			return err
		})
}

func (s *ticketService) ToggleRequirement(ctx context.Context, ticketID, requirementID string) (*domain.Ticket, error) {
	return s.mutate(ctx, "toggle-requirement", ticketID, map[string]any{"requirement_id": requirementID},
		func(t *domain.Ticket, now time.Time) error {
			return t.ToggleRequirement(requirementID, now)
		})
}

func (s *ticketService) RemoveRequirement(ctx context.Context, ticketID, requirementID string) (*domain.Ticket, error) {
	return s.mutate(ctx, "remove-requirement", ticketID, map[string]any{"requirement_id": requirementID},
		func(t *domain.Ticket, now time.Time) error {
			return t.RemoveRequirement(requirementID, now)
		})
}

// mutate reads the ticket, applies fn and writes the ticket row and its
// requirement list back in one transaction. If fn fails nothing is written.
func (s *ticketService) mutate(
	ctx context.Context,
	name, id string,
	fields map[string]any,
	fn func(t *domain.Ticket, now time.Time) error,
) (ticket *domain.Ticket, err error) {
	fields["ticket_id"] = id
	defer observe(ctx, s.observer, name, time.Now(), fields, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTickets := repository.NewSQLiteTicketRepo(tx)
		t, err := txTickets.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(t, s.now()); err != nil {
			return err
		}
		if err := txTickets.Update(ctx, t); err != nil {
			return err
		}
		ticket = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ticket, nil
}
