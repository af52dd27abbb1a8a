// Package api exposes the intake services as JSON over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/alexanderramin/intake/internal/config"
	"github.com/alexanderramin/intake/internal/service"
	"go.uber.org/zap"
)

// Services groups the use cases the HTTP adapter calls.
type Services struct {
	Requests    service.RequestService
	Projects    service.ProjectService
	Tickets     service.TicketService
	Conversions service.ConversionService
}

type Server struct {
	svc    Services
	logger *zap.Logger
	mux    *http.ServeMux
}

func NewServer(svc Services, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{svc: svc, logger: logger.Named("http"), mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /requests", s.listRequests)
	s.mux.HandleFunc("POST /requests", s.createRequest)
	s.mux.HandleFunc("GET /requests/counts", s.requestCounts)
	s.mux.HandleFunc("GET /requests/{id}", s.getRequest)
	s.mux.HandleFunc("POST /requests/{id}/triage", s.triageRequest)
	s.mux.HandleFunc("POST /requests/{id}/convert", s.convertRequest)
	s.mux.HandleFunc("GET /requests/{id}/ticket", s.getRequestTicket)

	s.mux.HandleFunc("GET /projects", s.listProjects)
	s.mux.HandleFunc("POST /projects", s.createProject)
	s.mux.HandleFunc("GET /projects/{id}", s.getProject)
	s.mux.HandleFunc("POST /projects/{id}/archive", s.archiveProject)
	s.mux.HandleFunc("GET /projects/{id}/counts", s.projectCounts)
	s.mux.HandleFunc("GET /projects/{id}/tickets", s.listProjectTickets)
	s.mux.HandleFunc("POST /projects/{id}/tickets", s.createTicket)
	s.mux.HandleFunc("GET /projects/{id}/board", s.projectBoard)

	s.mux.HandleFunc("GET /tickets/{id}", s.getTicket)
	s.mux.HandleFunc("POST /tickets/{id}/move", s.moveTicket)
	s.mux.HandleFunc("POST /tickets/{id}/assign", s.assignTicket)
	s.mux.HandleFunc("POST /tickets/{id}/requirements", s.addRequirement)
	s.mux.HandleFunc("POST /tickets/{id}/requirements/{rid}/toggle", s.toggleRequirement)
	s.mux.HandleFunc("DELETE /tickets/{id}/requirements/{rid}", s.removeRequirement)
}

// ServeHTTP routes and logs every request.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.logger.Info("request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("duration", time.Since(start)),
	)
}

// HTTPServer wraps handler in an http.Server with the configured timeouts.
func HTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func zapRequest(r *http.Request, err error) []zap.Field {
	return []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	}
}
