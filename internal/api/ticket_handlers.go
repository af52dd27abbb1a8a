package api

import (
	"net/http"

	"github.com/alexanderramin/intake/internal/domain"
)

type moveBody struct {
	Column string `json:"column"`
}

type assignBody struct {
	Assignee string `json:"assignee"`
}

type requirementBody struct {
	Text string `json:"text"`
}

func (s *Server) getTicket(w http.ResponseWriter, r *http.Request) {
	t, err := s.svc.Tickets.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTicketView(t))
}

func (s *Server) moveTicket(w http.ResponseWriter, r *http.Request) {
	var body moveBody
	if err := decode(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondTicket(w, r, http.StatusOK)(s.svc.Tickets.Move(r.Context(), r.PathValue("id"), domain.Column(body.Column)))
}

// assignTicket clears the assignee when the body omits it or leaves it blank.
func (s *Server) assignTicket(w http.ResponseWriter, r *http.Request) {
	var body assignBody
	if err := decode(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondTicket(w, r, http.StatusOK)(s.svc.Tickets.Assign(r.Context(), r.PathValue("id"), body.Assignee))
}

func (s *Server) addRequirement(w http.ResponseWriter, r *http.Request) {
	var body requirementBody
	if err := decode(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondTicket(w, r, http.StatusCreated)(s.svc.Tickets.AddRequirement(r.Context(), r.PathValue("id"), body.Text))
}

func (s *Server) toggleRequirement(w http.ResponseWriter, r *http.Request) {
	s.respondTicket(w, r, http.StatusOK)(s.svc.Tickets.ToggleRequirement(r.Context(), r.PathValue("id"), r.PathValue("rid")))
}

func (s *Server) removeRequirement(w http.ResponseWriter, r *http.Request) {
	s.respondTicket(w, r, http.StatusOK)(s.svc.Tickets.RemoveRequirement(r.Context(), r.PathValue("id"), r.PathValue("rid")))
}

// respondTicket writes the result of a ticket mutation.
func (s *Server) respondTicket(w http.ResponseWriter, r *http.Request, status int) func(*domain.Ticket, error) {
	return func(t *domain.Ticket, err error) {
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, status, toTicketView(t))
	}
}
