package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/intake/internal/db"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/repository"
)

type conversionService struct {
	tickets repository.TicketRepo
	uow     db.UnitOfWork
	settings
}

// NewConversionService builds the request-to-ticket workflow. tickets is used
// outside any transaction to re-read the winner after a lost insert race.
func NewConversionService(tickets repository.TicketRepo, uow db.UnitOfWork, opts ...Option) ConversionService {
	return &conversionService{tickets: tickets, uow: uow, settings: newSettings(opts)}
}

// ConvertToTicket turns an accepted request into a backlog ticket on
// projectID. If the request already has a ticket anywhere, that ticket is
// returned unchanged and projectID is ignored.
func (s *conversionService) ConvertToTicket(ctx context.Context, projectID, intakeRequestID string) (conv *Conversion, err error) {
	fields := map[string]any{"request_id": intakeRequestID, "project_id": projectID}
	defer observe(ctx, s.observer, "convert-request", time.Now(), fields, &err)

	conv, err = s.convert(ctx, intakeRequestID, func(ctx context.Context, tx db.DBTX) (*domain.Project, error) {
		return repository.NewSQLiteProjectRepo(tx).GetByID(ctx, projectID)
	})
	if err != nil {
		return nil, err
	}
	fields["ticket_id"] = conv.Ticket.ID
	fields["created"] = conv.Created
	return conv, nil
}

// ConvertToNewProject creates a project and converts the request onto it in
// one transaction. When the request already has a ticket no project is
// created and the existing ticket is returned.
func (s *conversionService) ConvertToNewProject(ctx context.Context, projectName, description, intakeRequestID string) (conv *Conversion, err error) {
	fields := map[string]any{"request_id": intakeRequestID, "project_name": projectName}
	defer observe(ctx, s.observer, "convert-request-new-project", time.Now(), fields, &err)

	p, err := domain.NewProject(s.newID(), projectName, description, s.now())
	if err != nil {
		return nil, err
	}
	conv, err = s.convert(ctx, intakeRequestID, func(ctx context.Context, tx db.DBTX) (*domain.Project, error) {
		if err := repository.NewSQLiteProjectRepo(tx).Create(ctx, p); err != nil {
			return nil, err
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	if conv.Created {
		conv.Project = p
		fields["project_id"] = p.ID
	}
	fields["ticket_id"] = conv.Ticket.ID
	fields["created"] = conv.Created
	return conv, nil
}

// convert runs eligibility, the global one-ticket-per-request check and the
// insert in a single transaction. target resolves the owning project and is
// only called when a new ticket is needed.
func (s *conversionService) convert(
	ctx context.Context,
	intakeRequestID string,
	target func(ctx context.Context, tx db.DBTX) (*domain.Project, error),
) (*Conversion, error) {
	var conv *Conversion
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTickets := repository.NewSQLiteTicketRepo(tx)

		req, err := repository.NewSQLiteRequestRepo(tx).GetByID(ctx, intakeRequestID)
		if err != nil {
			return err
		}
		if !req.Convertible() {
			return fmt.Errorf("intake request %q is %s: %w", req.ID, req.Status, domain.ErrNotEligible)
		}

		existing, err := txTickets.GetByIntakeRequest(ctx, req.ID)
		if err == nil {
			conv = &Conversion{Ticket: existing}
			return nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		p, err := target(ctx, tx)
		if err != nil {
			return err
		}
		t := domain.TicketFromRequest(s.newID(), p.ID, req, s.now())
		if err := txTickets.Create(ctx, t); err != nil {
			return err
		}
		conv = &Conversion{Ticket: t, Created: true}
		return nil
	})
	if errors.Is(err, repository.ErrDuplicate) {
		// Another conversion committed first; the transaction rolled back,
		// so return the ticket that won.
		existing, readErr := s.tickets.GetByIntakeRequest(ctx, intakeRequestID)
		if readErr != nil {
			return nil, fmt.Errorf("re-reading ticket after duplicate conversion: %w", readErr)
		}
		return &Conversion{Ticket: existing}, nil
	}
	if err != nil {
		return nil, err
	}
	return conv, nil
}
