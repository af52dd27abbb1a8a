package api

import (
	"net/http"
)

type createProjectBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type createTicketBody struct {
	Title           string `json:"title"`
	BusinessContext string `json:"businessContext"`
}

// listProjects includes per-project ticket counts.
func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.svc.Projects.ListWithCounts(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": toProjectSummaryViews(summaries)})
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var body createProjectBody
	if err := decode(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := s.svc.Projects.Create(r.Context(), body.Name, body.Description)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProjectView(p))
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Projects.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectView(p))
}

func (s *Server) archiveProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Projects.Archive(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectView(p))
}

func (s *Server) projectCounts(w http.ResponseWriter, r *http.Request) {
	c, err := s.svc.Projects.TicketCounts(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCountsView(c))
}

func (s *Server) listProjectTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := s.svc.Tickets.ListByProject(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tickets": toTicketViews(tickets)})
}

func (s *Server) createTicket(w http.ResponseWriter, r *http.Request) {
	var body createTicketBody
	if err := decode(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	t, err := s.svc.Tickets.Create(r.Context(), r.PathValue("id"), body.Title, body.BusinessContext)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTicketView(t))
}

func (s *Server) projectBoard(w http.ResponseWriter, r *http.Request) {
	b, err := s.svc.Tickets.Board(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBoardView(b))
}
