package domain

import (
	"strings"
	"time"
)

type IntakeRequest struct {
	ID              string
	Title           string
	BusinessContext string
	ImpactArea      ImpactArea
	Urgency         Urgency
	RequesterName   string
	Status          RequestStatus
	ReviewNote      *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewRequest holds the submission fields of an intake request.
type NewRequest struct {
	Title           string
	BusinessContext string
	ImpactArea      string
	Urgency         string
	RequesterName   string
}

// Build validates the submission and returns a request in status new with
// createdAt == updatedAt == now. All fields are required after trimming.
func (n NewRequest) Build(id string, now time.Time) (*IntakeRequest, error) {
	title, err := RequireText("title", n.Title)
	if err != nil {
		return nil, err
	}
	bc, err := RequireText("businessContext", n.BusinessContext)
	if err != nil {
		return nil, err
	}
	areaStr, err := RequireText("impactArea", n.ImpactArea)
	if err != nil {
		return nil, err
	}
	area, err := ParseImpactArea(areaStr)
	if err != nil {
		return nil, err
	}
	urgStr, err := RequireText("urgency", n.Urgency)
	if err != nil {
		return nil, err
	}
	urg, err := ParseUrgency(urgStr)
	if err != nil {
		return nil, err
	}
	requester, err := RequireText("requesterName", n.RequesterName)
	if err != nil {
		return nil, err
	}
	return &IntakeRequest{
		ID:              id,
		Title:           title,
		BusinessContext: bc,
		ImpactArea:      area,
		Urgency:         urg,
		RequesterName:   requester,
		Status:          StatusNew,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Triage applies a reviewer decision. Any current status may be re-triaged.
// A blank note keeps the previous review note.
func (r *IntakeRequest) Triage(action TriageAction, note string, now time.Time) error {
	status, ok := TriageOutcome(action)
	if !ok {
		return invalidEnum("action", string(action), TriageActions)
	}
	r.Status = status
	if n := strings.TrimSpace(note); n != "" {
		r.ReviewNote = &n
	}
	r.UpdatedAt = now
	return nil
}

// Convertible reports whether the request may become a ticket.
func (r *IntakeRequest) Convertible() bool {
	return r.Status == StatusAccepted
}
