package api

import (
	"time"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/repository"
	"github.com/alexanderramin/intake/internal/service"
)

// Outward-facing shapes. Timestamps are RFC3339 UTC strings.

type requestView struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	BusinessContext string  `json:"businessContext"`
	ImpactArea      string  `json:"impactArea"`
	Urgency         string  `json:"urgency"`
	RequesterName   string  `json:"requesterName"`
	Status          string  `json:"status"`
	ReviewNote      *string `json:"reviewNote,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

type projectView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Archived    bool    `json:"archived"`
	CreatedAt   string  `json:"createdAt"`
}

type projectSummaryView struct {
	projectView
	Counts countsView `json:"counts"`
}

type countsView struct {
	Total int `json:"total"`
	Done  int `json:"done"`
}

type requirementView struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type ticketView struct {
	ID              string            `json:"id"`
	ProjectID       string            `json:"projectId"`
	IntakeRequestID *string           `json:"intakeRequestId,omitempty"`
	Title           string            `json:"title"`
	BusinessContext string            `json:"businessContext"`
	ImpactArea      string            `json:"impactArea"`
	Urgency         string            `json:"urgency"`
	Column          string            `json:"column"`
	Assignee        *string           `json:"assignee,omitempty"`
	Requirements    []requirementView `json:"requirements"`
	CreatedAt       string            `json:"createdAt"`
	UpdatedAt       string            `json:"updatedAt"`
}

type boardColumnView struct {
	Column  string       `json:"column"`
	Tickets []ticketView `json:"tickets"`
}

type boardView struct {
	Project projectView       `json:"project"`
	Columns []boardColumnView `json:"columns"`
}

type conversionView struct {
	Ticket  ticketView   `json:"ticket"`
	Created bool         `json:"created"`
	Project *projectView `json:"project,omitempty"`
}

func isoTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toRequestView(r *domain.IntakeRequest) requestView {
	return requestView{
		ID:              r.ID,
		Title:           r.Title,
		BusinessContext: r.BusinessContext,
		ImpactArea:      string(r.ImpactArea),
		Urgency:         string(r.Urgency),
		RequesterName:   r.RequesterName,
		Status:          string(r.Status),
		ReviewNote:      r.ReviewNote,
		CreatedAt:       isoTime(r.CreatedAt),
		UpdatedAt:       isoTime(r.UpdatedAt),
	}
}

func toRequestViews(rs []*domain.IntakeRequest) []requestView {
	out := make([]requestView, 0, len(rs))
	for _, r := range rs {
		out = append(out, toRequestView(r))
	}
	return out
}

func toProjectView(p *domain.Project) projectView {
	return projectView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Archived:    p.Archived,
		CreatedAt:   isoTime(p.CreatedAt),
	}
}

func toProjectSummaryViews(ss []repository.ProjectSummary) []projectSummaryView {
	out := make([]projectSummaryView, 0, len(ss))
	for _, s := range ss {
		out = append(out, projectSummaryView{
			projectView: toProjectView(&s.Project),
			Counts:      toCountsView(s.Counts),
		})
	}
	return out
}

func toCountsView(c domain.TicketCounts) countsView {
	return countsView{Total: c.Total, Done: c.Done}
}

func toTicketView(t *domain.Ticket) ticketView {
	reqs := make([]requirementView, 0, len(t.Requirements))
	for _, r := range t.Requirements {
		reqs = append(reqs, requirementView{ID: r.ID, Text: r.Text, Completed: r.Completed})
	}
	return ticketView{
		ID:              t.ID,
		ProjectID:       t.ProjectID,
		IntakeRequestID: t.IntakeRequestID,
		Title:           t.Title,
		BusinessContext: t.BusinessContext,
		ImpactArea:      string(t.ImpactArea),
		Urgency:         string(t.Urgency),
		Column:          string(t.Column),
		Assignee:        t.Assignee,
		Requirements:    reqs,
		CreatedAt:       isoTime(t.CreatedAt),
		UpdatedAt:       isoTime(t.UpdatedAt),
	}
}

func toTicketViews(ts []*domain.Ticket) []ticketView {
	out := make([]ticketView, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTicketView(t))
	}
	return out
}

func toBoardView(b *service.Board) boardView {
	cols := make([]boardColumnView, 0, len(b.Columns))
	for _, c := range b.Columns {
		cols = append(cols, boardColumnView{Column: string(c.Column), Tickets: toTicketViews(c.Tickets)})
	}
	return boardView{Project: toProjectView(b.Project), Columns: cols}
}

func toConversionView(c *service.Conversion) conversionView {
	v := conversionView{Ticket: toTicketView(c.Ticket), Created: c.Created}
	if c.Project != nil {
		pv := toProjectView(c.Project)
		v.Project = &pv
	}
	return v
}
