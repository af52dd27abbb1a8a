package testutil

import (
	"time"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/google/uuid"
)

// Request options
type RequestOption func(*domain.IntakeRequest)

func WithStatus(s domain.RequestStatus) RequestOption {
	return func(r *domain.IntakeRequest) {
		r.Status = s
	}
}

func WithImpact(a domain.ImpactArea) RequestOption {
	return func(r *domain.IntakeRequest) {
		r.ImpactArea = a
	}
}

func WithUrgency(u domain.Urgency) RequestOption {
	return func(r *domain.IntakeRequest) {
		r.Urgency = u
	}
}

func WithReviewNote(n string) RequestOption {
	return func(r *domain.IntakeRequest) {
		r.ReviewNote = &n
	}
}

func WithRequestTimes(created, updated time.Time) RequestOption {
	return func(r *domain.IntakeRequest) {
		r.CreatedAt = created
		r.UpdatedAt = updated
	}
}

func NewTestRequest(title string, opts ...RequestOption) *domain.IntakeRequest {
	now := time.Now().UTC()
	r := &domain.IntakeRequest{
		ID:              uuid.New().String(),
		Title:           title,
		BusinessContext: "context for " + title,
		ImpactArea:      domain.ImpactEngineering,
		Urgency:         domain.UrgencyMedium,
		RequesterName:   "Test Requester",
		Status:          domain.StatusNew,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Project options
type ProjectOption func(*domain.Project)

func WithDescription(d string) ProjectOption {
	return func(p *domain.Project) {
		p.Description = &d
	}
}

func WithArchived() ProjectOption {
	return func(p *domain.Project) {
		p.Archived = true
	}
}

func WithProjectCreatedAt(t time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.CreatedAt = t
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Ticket options
type TicketOption func(*domain.Ticket)

func WithColumn(c domain.Column) TicketOption {
	return func(t *domain.Ticket) {
		t.Column = c
	}
}

func WithAssignee(a string) TicketOption {
	return func(t *domain.Ticket) {
		t.Assignee = &a
	}
}

func WithIntakeRequest(id string) TicketOption {
	return func(t *domain.Ticket) {
		t.IntakeRequestID = &id
	}
}

// WithRequirements appends requirements with generated ids.
func WithRequirements(texts ...string) TicketOption {
	return func(t *domain.Ticket) {
		for _, text := range texts {
			t.Requirements = append(t.Requirements, domain.Requirement{
				ID:   domain.RequirementID(uuid.New().String()),
				Text: text,
			})
		}
	}
}

func NewTestTicket(projectID, title string, opts ...TicketOption) *domain.Ticket {
	now := time.Now().UTC()
	t := &domain.Ticket{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		Title:        title,
		ImpactArea:   domain.ImpactOther,
		Urgency:      domain.UrgencyMedium,
		Column:       domain.ColumnBacklog,
		Requirements: []domain.Requirement{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// StepClock returns a clock that advances by step on every call, starting at
// start. Services take it so ordering and updatedAt bumps are deterministic.
func StepClock(start time.Time, step time.Duration) func() time.Time {
	var n int64
	return func() time.Time {
		t := start.Add(time.Duration(n) * step)
		n++
		return t
	}
}
