package service

import (
	"context"
	"time"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/repository"
)

type requestService struct {
	requests repository.RequestRepo
	settings
}

func NewRequestService(requests repository.RequestRepo, opts ...Option) RequestService {
	return &requestService{requests: requests, settings: newSettings(opts)}
}

func (s *requestService) List(ctx context.Context) ([]*domain.IntakeRequest, error) {
	return s.requests.List(ctx)
}

func (s *requestService) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]*domain.IntakeRequest, error) {
	if _, err := domain.ParseRequestStatus(string(status)); err != nil {
		return nil, err
	}
	return s.requests.ListByStatus(ctx, status)
}

func (s *requestService) StatusCounts(ctx context.Context) (map[domain.RequestStatus]int, error) {
	return s.requests.CountByStatus(ctx)
}

func (s *requestService) Get(ctx context.Context, id string) (*domain.IntakeRequest, error) {
	return s.requests.GetByID(ctx, id)
}

func (s *requestService) Create(ctx context.Context, in domain.NewRequest) (req *domain.IntakeRequest, err error) {
	fields := map[string]any{"urgency": in.Urgency, "impact_area": in.ImpactArea}
	defer observe(ctx, s.observer, "submit-request", time.Now(), fields, &err)

	req, err = in.Build(s.newID(), s.now())
	if err != nil {
		return nil, err
	}
	if err = s.requests.Create(ctx, req); err != nil {
		return nil, err
	}
	fields["request_id"] = req.ID
	return req, nil
}

// Triage applies action regardless of the current status. The action is
// validated before the lookup, so a bad action never reports NotFound.
func (s *requestService) Triage(ctx context.Context, id string, action domain.TriageAction, note string) (req *domain.IntakeRequest, err error) {
	fields := map[string]any{"request_id": id, "action": string(action)}
	defer observe(ctx, s.observer, "triage-request", time.Now(), fields, &err)

	if _, err = domain.ParseTriageAction(string(action)); err != nil {
		return nil, err
	}
	req, err = s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = req.Triage(action, note, s.now()); err != nil {
		return nil, err
	}
	if err = s.requests.Update(ctx, req); err != nil {
		return nil, err
	}
	fields["status"] = string(req.Status)
	return req, nil
}
