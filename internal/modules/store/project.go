package store

import (
	"strings"

	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/model"
)

// CreateProject appends a new project with no schedules or categories.
// totalBudget == 0 means the project runs without a fixed budget.
func (s *Store) CreateProject(name string, totalBudget float64, clientName string) (model.Project, error) {
	if strings.TrimSpace(name) == "" {
		return model.Project{}, invalid("name", "must not be blank")
	}
	if totalBudget < 0 {
		return model.Project{}, invalid("total_budget", "must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p := model.Project{
		ID:          uuid.New(),
		Name:        name,
		ClientName:  clientName,
		TotalBudget: totalBudget,
		Schedules:   []model.Schedule{},
		Categories:  []model.Category{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.projects = append(s.projects, p)
	return cloneProject(p), nil
}

// ListProjects returns all projects in creation order.
func (s *Store) ListProjects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = cloneProject(p)
	}
	return out
}

// GetProject returns one project by id.
func (s *Store) GetProject(id uuid.UUID) (model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.findProject(id)
	if p == nil {
		return model.Project{}, notFound(KindProject, id)
	}
	return cloneProject(*p), nil
}

// UpdateProject applies a partial update. Nil patch fields leave the current
// value alone; an all-nil patch is a no-op that leaves the project identical.
func (s *Store) UpdateProject(id uuid.UUID, patch model.ProjectPatch) (model.Project, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return model.Project{}, invalid("name", "must not be blank")
	}
	if patch.TotalBudget != nil && *patch.TotalBudget < 0 {
		return model.Project{}, invalid("total_budget", "must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(id)
	if p == nil {
		return model.Project{}, notFound(KindProject, id)
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.ClientName != nil {
		p.ClientName = *patch.ClientName
	}
	if patch.TotalBudget != nil {
		p.TotalBudget = *patch.TotalBudget
	}
	if patch.Name != nil || patch.ClientName != nil || patch.TotalBudget != nil {
		p.UpdatedAt = s.now()
	}
	return cloneProject(*p), nil
}

// DeleteProject removes a project and everything it owns. If the active
// selection pointed into the deleted project it is cleared.
func (s *Store) DeleteProject(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		s.projects = append(s.projects[:i], s.projects[i+1:]...)
		if s.currentProjectID == id {
			s.currentProjectID = uuid.Nil
			s.currentScheduleID = uuid.Nil
		}
		return nil
	}
	return notFound(KindProject, id)
}
