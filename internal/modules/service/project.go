package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/model"
	"github.com/specbook-io/specbook/internal/modules/store"
)

type ProjectService interface {
	Create(ctx context.Context, name string, totalBudget float64, clientName string) (model.Project, error)
	List(ctx context.Context) []model.Project
	Get(ctx context.Context, id uuid.UUID) (model.Project, error)
	Update(ctx context.Context, id uuid.UUID, patch model.ProjectPatch) (model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Selection(ctx context.Context) store.Selection
	Select(ctx context.Context, projectID, scheduleID uuid.UUID) error
}

type projectService struct{ s *store.Store }

func NewProjectService(s *store.Store) ProjectService {
	return &projectService{s: s}
}

func (p *projectService) Create(ctx context.Context, name string, totalBudget float64, clientName string) (model.Project, error) {
	return p.s.CreateProject(name, totalBudget, clientName)
}

func (p *projectService) List(ctx context.Context) []model.Project {
	return p.s.ListProjects()
}

func (p *projectService) Get(ctx context.Context, id uuid.UUID) (model.Project, error) {
	return p.s.GetProject(id)
}

func (p *projectService) Update(ctx context.Context, id uuid.UUID, patch model.ProjectPatch) (model.Project, error) {
	return p.s.UpdateProject(id, patch)
}

func (p *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	return p.s.DeleteProject(id)
}

func (p *projectService) Selection(ctx context.Context) store.Selection {
	return p.s.CurrentSelection()
}

func (p *projectService) Select(ctx context.Context, projectID, scheduleID uuid.UUID) error {
	return p.s.SetSelection(projectID, scheduleID)
}
