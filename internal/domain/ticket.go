package domain

import (
	"strings"
	"time"
)

type Ticket struct {
	ID              string
	ProjectID       string
	IntakeRequestID *string
	Title           string
	BusinessContext string
	ImpactArea      ImpactArea
	Urgency         Urgency
	Column          Column
	Assignee        *string
	Requirements    []Requirement
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Requirement is a checklist item owned by its ticket.
type Requirement struct {
	ID        string
	Text      string
	Completed bool
}

// NewAdHocTicket builds a ticket created directly on a board.
func NewAdHocTicket(id, projectID, title, businessContext string, now time.Time) (*Ticket, error) {
	t, err := RequireText("title", title)
	if err != nil {
		return nil, err
	}
	return &Ticket{
		ID:              id,
		ProjectID:       projectID,
		Title:           t,
		BusinessContext: strings.TrimSpace(businessContext),
		ImpactArea:      ImpactOther,
		Urgency:         UrgencyMedium,
		Column:          ColumnBacklog,
		Requirements:    []Requirement{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// TicketFromRequest copies the request's descriptive fields onto a new
// backlog ticket linked back to it.
func TicketFromRequest(id, projectID string, r *IntakeRequest, now time.Time) *Ticket {
	reqID := r.ID
	return &Ticket{
		ID:              id,
		ProjectID:       projectID,
		IntakeRequestID: &reqID,
		Title:           r.Title,
		BusinessContext: r.BusinessContext,
		ImpactArea:      r.ImpactArea,
		Urgency:         r.Urgency,
		Column:          ColumnBacklog,
		Requirements:    []Requirement{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// DisplayID returns the id truncated to 8 characters for tables.
func (t *Ticket) DisplayID() string {
	return shortID(t.ID)
}

// MoveTo places the ticket in any column; adjacency is not enforced.
func (t *Ticket) MoveTo(c Column, now time.Time) error {
	if !c.Valid() {
		return invalidEnum("column", string(c), Columns)
	}
	t.Column = c
	t.UpdatedAt = now
	return nil
}

// AssignTo sets the assignee; a blank name clears it.
func (t *Ticket) AssignTo(assignee string, now time.Time) {
	if a := strings.TrimSpace(assignee); a != "" {
		t.Assignee = &a
	} else {
		t.Assignee = nil
	}
	t.UpdatedAt = now
}

// AddRequirement appends an incomplete requirement.
func (t *Ticket) AddRequirement(id, text string, now time.Time) (Requirement, error) {
	txt, err := RequireText("text", text)
	if err != nil {
		return Requirement{}, err
	}
	r := Requirement{ID: id, Text: txt}
	t.Requirements = append(t.Requirements, r)
	t.UpdatedAt = now
	return r, nil
}

// ToggleRequirement flips the completed flag. Unknown ids fail and leave the
// ticket untouched.
func (t *Ticket) ToggleRequirement(requirementID string, now time.Time) error {
	i := t.requirementIndex(requirementID)
	if i < 0 {
		return NotFound("requirement", requirementID)
	}
	t.Requirements[i].Completed = !t.Requirements[i].Completed
	t.UpdatedAt = now
	return nil
}

// RemoveRequirement drops the requirement, preserving the order of the rest.
// Unknown ids fail and leave the ticket untouched.
func (t *Ticket) RemoveRequirement(requirementID string, now time.Time) error {
	i := t.requirementIndex(requirementID)
	if i < 0 {
		return NotFound("requirement", requirementID)
	}
	rest := make([]Requirement, 0, len(t.Requirements)-1)
	rest = append(rest, t.Requirements[:i]...)
	rest = append(rest, t.Requirements[i+1:]...)
	t.Requirements = rest
	t.UpdatedAt = now
	return nil
}

// CompletedRequirements counts checked requirements.
func (t *Ticket) CompletedRequirements() int {
	n := 0
	for _, r := range t.Requirements {
		if r.Completed {
			n++
		}
	}
	return n
}

func (t *Ticket) requirementIndex(id string) int {
	for i, r := range t.Requirements {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// RequirementID derives a requirement id from a fresh unique token.
func RequirementID(token string) string {
	return "r-" + token
}
