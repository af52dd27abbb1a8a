package service

import (
	"context"
	"time"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
	tickets  repository.TicketRepo
	settings
}

func NewProjectService(projects repository.ProjectRepo, tickets repository.TicketRepo, opts ...Option) ProjectService {
	return &projectService{projects: projects, tickets: tickets, settings: newSettings(opts)}
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) ListWithCounts(ctx context.Context) ([]repository.ProjectSummary, error) {
	return s.projects.ListWithCounts(ctx)
}

func (s *projectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) Create(ctx context.Context, name, description string) (p *domain.Project, err error) {
	fields := map[string]any{"name": name}
	defer observe(ctx, s.observer, "create-project", time.Now(), fields, &err)

	p, err = domain.NewProject(s.newID(), name, description, s.now())
	if err != nil {
		return nil, err
	}
	if err = s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	fields["project_id"] = p.ID
	return p, nil
}

// TicketCounts derives {total, done} from the project's tickets. Unknown
// projects are NotFound rather than an empty count.
func (s *projectService) TicketCounts(ctx context.Context, projectID string) (domain.TicketCounts, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return domain.TicketCounts{}, err
	}
	return s.tickets.CountByProject(ctx, projectID)
}

// Archive flips the archived flag and returns the updated project.
func (s *projectService) Archive(ctx context.Context, id string) (p *domain.Project, err error) {
	fields := map[string]any{"project_id": id}
	defer observe(ctx, s.observer, "toggle-archive", time.Now(), fields, &err)

	if err = s.projects.ToggleArchived(ctx, id); err != nil {
		return nil, err
	}
	p, err = s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	fields["archived"] = p.Archived
	return p, nil
}
