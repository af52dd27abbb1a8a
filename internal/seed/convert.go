package seed

import (
	"strings"
	"time"

	"github.com/alexanderramin/intake/internal/domain"
)

// Converted holds domain objects ready for persistence, in insert order.
type Converted struct {
	Requests []*domain.IntakeRequest
	Projects []*domain.Project
	Tickets  []*domain.Ticket
}

// Convert maps a validated dataset onto domain objects. Call Validate first;
// Convert assumes enum values and references are valid.
func Convert(ds *Dataset) *Converted {
	out := &Converted{
		Requests: make([]*domain.IntakeRequest, 0, len(ds.Requests)),
		Projects: make([]*domain.Project, 0, len(ds.Projects)),
		Tickets:  make([]*domain.Ticket, 0, len(ds.Tickets)),
	}

	byID := make(map[string]*domain.IntakeRequest, len(ds.Requests))
	for _, r := range ds.Requests {
		req := &domain.IntakeRequest{
			ID:              r.ID,
			Title:           strings.TrimSpace(r.Title),
			BusinessContext: strings.TrimSpace(r.BusinessContext),
			ImpactArea:      domain.ImpactArea(r.ImpactArea),
			Urgency:         domain.Urgency(r.Urgency),
			RequesterName:   strings.TrimSpace(r.RequesterName),
			Status:          domain.RequestStatus(r.Status),
			ReviewNote:      trimmed(r.ReviewNote),
			CreatedAt:       r.CreatedAt.UTC(),
			UpdatedAt:       orCreated(r.UpdatedAt, r.CreatedAt),
		}
		byID[req.ID] = req
		out.Requests = append(out.Requests, req)
	}

	for _, p := range ds.Projects {
		out.Projects = append(out.Projects, &domain.Project{
			ID:          p.ID,
			Name:        strings.TrimSpace(p.Name),
			Description: trimmed(p.Description),
			Archived:    p.Archived,
			CreatedAt:   p.CreatedAt.UTC(),
		})
	}

	for _, t := range ds.Tickets {
		var tk *domain.Ticket
		if t.IntakeRequestID != nil {
			tk = domain.TicketFromRequest(t.ID, t.ProjectID, byID[*t.IntakeRequestID], t.CreatedAt.UTC())
		} else {
			tk = &domain.Ticket{
				ID:         t.ID,
				ProjectID:  t.ProjectID,
				ImpactArea: domain.ImpactOther,
				Urgency:    domain.UrgencyMedium,
				Column:     domain.ColumnBacklog,
			}
		}
		if s := strings.TrimSpace(t.Title); s != "" {
			tk.Title = s
		}
		if s := strings.TrimSpace(t.BusinessContext); s != "" {
			tk.BusinessContext = s
		}
		if t.ImpactArea != "" {
			tk.ImpactArea = domain.ImpactArea(t.ImpactArea)
		}
		if t.Urgency != "" {
			tk.Urgency = domain.Urgency(t.Urgency)
		}
		if t.Column != "" {
			tk.Column = domain.Column(t.Column)
		}
		tk.Assignee = trimmed(t.Assignee)
		tk.Requirements = make([]domain.Requirement, 0, len(t.Requirements))
		for _, r := range t.Requirements {
			tk.Requirements = append(tk.Requirements, domain.Requirement{
				ID:        r.ID,
				Text:      strings.TrimSpace(r.Text),
				Completed: r.Completed,
			})
		}
		tk.CreatedAt = t.CreatedAt.UTC()
		tk.UpdatedAt = orCreated(t.UpdatedAt, t.CreatedAt)
		out.Tickets = append(out.Tickets, tk)
	}

	return out
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func orCreated(updated, created time.Time) time.Time {
	if updated.IsZero() {
		return created.UTC()
	}
	return updated.UTC()
}
