package service

import (
	"context"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/repository"
)

type RequestService interface {
	List(ctx context.Context) ([]*domain.IntakeRequest, error)
	ListByStatus(ctx context.Context, status domain.RequestStatus) ([]*domain.IntakeRequest, error)
	StatusCounts(ctx context.Context) (map[domain.RequestStatus]int, error)
	Get(ctx context.Context, id string) (*domain.IntakeRequest, error)
	Create(ctx context.Context, in domain.NewRequest) (*domain.IntakeRequest, error)
	Triage(ctx context.Context, id string, action domain.TriageAction, note string) (*domain.IntakeRequest, error)
}

type ProjectService interface {
	List(ctx context.Context) ([]*domain.Project, error)
	ListWithCounts(ctx context.Context) ([]repository.ProjectSummary, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, name, description string) (*domain.Project, error)
	TicketCounts(ctx context.Context, projectID string) (domain.TicketCounts, error)
	Archive(ctx context.Context, id string) (*domain.Project, error)
}

type TicketService interface {
	ListByProject(ctx context.Context, projectID string) ([]*domain.Ticket, error)
	Board(ctx context.Context, projectID string) (*Board, error)
	Get(ctx context.Context, id string) (*domain.Ticket, error)
	GetByIntakeRequest(ctx context.Context, intakeRequestID string) (*domain.Ticket, error)
	Create(ctx context.Context, projectID, title, businessContext string) (*domain.Ticket, error)
	Move(ctx context.Context, id string, column domain.Column) (*domain.Ticket, error)
	Assign(ctx context.Context, id, assignee string) (*domain.Ticket, error)
	AddRequirement(ctx context.Context, ticketID, text string) (*domain.Ticket, error)
	ToggleRequirement(ctx context.Context, ticketID, requirementID string) (*domain.Ticket, error)
	RemoveRequirement(ctx context.Context, ticketID, requirementID string) (*domain.Ticket, error)
}

type ConversionService interface {
	ConvertToTicket(ctx context.Context, projectID, intakeRequestID string) (*Conversion, error)
	ConvertToNewProject(ctx context.Context, projectName, description, intakeRequestID string) (*Conversion, error)
}

// Board is a project's tickets grouped by column, left to right.
type Board struct {
	Project *domain.Project
	Columns []BoardColumn
}

type BoardColumn struct {
	Column  domain.Column
	Tickets []*domain.Ticket
}

// Conversion is the outcome of turning a request into a ticket. Created is
// false when an existing ticket for the request was returned instead.
// Project is set only when ConvertToNewProject created one.
type Conversion struct {
	Ticket  *domain.Ticket
	Created bool
	Project *domain.Project
}
