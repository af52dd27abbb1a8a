package api

import (
	"net/http"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/service"
)

type createRequestBody struct {
	Title           string `json:"title"`
	BusinessContext string `json:"businessContext"`
	ImpactArea      string `json:"impactArea"`
	Urgency         string `json:"urgency"`
	RequesterName   string `json:"requesterName"`
}

type triageBody struct {
	Action string `json:"action"`
	Note   string `json:"note"`
}

// convertBody targets an existing project by ProjectID, or creates one when
// NewProject is set.
type convertBody struct {
	ProjectID  string          `json:"projectId"`
	NewProject *newProjectBody `json:"newProject"`
}

type newProjectBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// listRequests accepts an optional ?status= filter.
func (s *Server) listRequests(w http.ResponseWriter, r *http.Request) {
	var (
		reqs []*domain.IntakeRequest
		err  error
	)
	if status := r.URL.Query().Get("status"); status != "" {
		reqs, err = s.svc.Requests.ListByStatus(r.Context(), domain.RequestStatus(status))
	} else {
		reqs, err = s.svc.Requests.List(r.Context())
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"requests": toRequestViews(reqs)})
}

func (s *Server) createRequest(w http.ResponseWriter, r *http.Request) {
	var body createRequestBody
	if err := decode(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	req, err := s.svc.Requests.Create(r.Context(), domain.NewRequest{
		Title:           body.Title,
		BusinessContext: body.BusinessContext,
		ImpactArea:      body.ImpactArea,
		Urgency:         body.Urgency,
		RequesterName:   body.RequesterName,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRequestView(req))
}

func (s *Server) requestCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := s.svc.Requests.StatusCounts(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make(map[string]int, len(counts))
	for k, v := range counts {
		out[string(k)] = v
	}
	writeJSON(w, http.StatusOK, map[string]any{"counts": out})
}

func (s *Server) getRequest(w http.ResponseWriter, r *http.Request) {
	req, err := s.svc.Requests.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRequestView(req))
}

func (s *Server) triageRequest(w http.ResponseWriter, r *http.Request) {
	var body triageBody
	if err := decode(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	req, err := s.svc.Requests.Triage(r.Context(), r.PathValue("id"), domain.TriageAction(body.Action), body.Note)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRequestView(req))
}

// convertRequest answers 201 when a ticket was created and 200 when the
// request's existing ticket was returned.
func (s *Server) convertRequest(w http.ResponseWriter, r *http.Request) {
	var body convertBody
	if err := decode(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}

	var (
		conv *service.Conversion
		err  error
	)
	id := r.PathValue("id")
	switch {
	case body.NewProject != nil:
		conv, err = s.svc.Conversions.ConvertToNewProject(r.Context(), body.NewProject.Name, body.NewProject.Description, id)
	case body.ProjectID != "":
		conv, err = s.svc.Conversions.ConvertToTicket(r.Context(), body.ProjectID, id)
	default:
		err = &domain.ValidationError{Field: "projectId", Message: "projectId or newProject is required"}
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if conv.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toConversionView(conv))
}

func (s *Server) getRequestTicket(w http.ResponseWriter, r *http.Request) {
	t, err := s.svc.Tickets.GetByIntakeRequest(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTicketView(t))
}
