package repository

import (
	"context"

	"github.com/alexanderramin/intake/internal/domain"
)

// ProjectSummary pairs a project with its derived ticket counts.
type ProjectSummary struct {
	Project domain.Project
	Counts  domain.TicketCounts
}

type RequestRepo interface {
	Create(ctx context.Context, r *domain.IntakeRequest) error
	GetByID(ctx context.Context, id string) (*domain.IntakeRequest, error)
	List(ctx context.Context) ([]*domain.IntakeRequest, error)
	ListByStatus(ctx context.Context, status domain.RequestStatus) ([]*domain.IntakeRequest, error)
	CountByStatus(ctx context.Context) (map[domain.RequestStatus]int, error)
	Update(ctx context.Context, r *domain.IntakeRequest) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	ListWithCounts(ctx context.Context) ([]ProjectSummary, error)
	ToggleArchived(ctx context.Context, id string) error
}

type TicketRepo interface {
	Create(ctx context.Context, t *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	GetByIntakeRequest(ctx context.Context, intakeRequestID string) (*domain.Ticket, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Ticket, error)
	CountByProject(ctx context.Context, projectID string) (domain.TicketCounts, error)
	Update(ctx context.Context, t *domain.Ticket) error
}
