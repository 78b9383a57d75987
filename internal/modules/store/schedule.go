package store

import (
	"strings"

	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/model"
)

// SchedulePatch carries a partial schedule update.
type SchedulePatch struct {
	Name   *string  `json:"name,omitempty"`
	Budget *float64 `json:"budget,omitempty"`
}

// CreateSchedule appends a new, empty schedule to a project. When the project
// carries a fixed budget the sum of sibling schedule budgets plus the new one
// must not exceed it. The check happens here and only here; budgets are not
// re-enforced afterwards.
func (s *Store) CreateSchedule(projectID uuid.UUID, name string, budget float64) (model.Schedule, error) {
	if strings.TrimSpace(name) == "" {
		return model.Schedule{}, invalid("name", "must not be blank")
	}
	if budget < 0 {
		return model.Schedule{}, invalid("budget", "must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return model.Schedule{}, notFound(KindProject, projectID)
	}
	if p.TotalBudget > 0 {
		allocated := 0.0
		for _, sc := range p.Schedules {
			allocated += sc.Budget
		}
		if allocated+budget > p.TotalBudget {
			return model.Schedule{}, invalid("budget", "exceeds remaining project budget")
		}
	}

	now := s.now()
	sc := model.Schedule{
		ID:        uuid.New(),
		Name:      name,
		Budget:    budget,
		Items:     []model.Item{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.Schedules = append(p.Schedules, sc)
	return cloneSchedule(sc), nil
}

// GetSchedule returns one schedule of a project.
func (s *Store) GetSchedule(projectID, scheduleID uuid.UUID) (model.Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.findProject(projectID)
	if p == nil {
		return model.Schedule{}, notFound(KindProject, projectID)
	}
	sc := findSchedule(p, scheduleID)
	if sc == nil {
		return model.Schedule{}, notFound(KindSchedule, scheduleID)
	}
	return cloneSchedule(*sc), nil
}

// UpdateSchedule applies a partial update to a schedule. Budget changes are
// accepted without re-checking the project allocation.
func (s *Store) UpdateSchedule(projectID, scheduleID uuid.UUID, patch SchedulePatch) (model.Schedule, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return model.Schedule{}, invalid("name", "must not be blank")
	}
	if patch.Budget != nil && *patch.Budget < 0 {
		return model.Schedule{}, invalid("budget", "must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return model.Schedule{}, notFound(KindProject, projectID)
	}
	sc := findSchedule(p, scheduleID)
	if sc == nil {
		return model.Schedule{}, notFound(KindSchedule, scheduleID)
	}
	if patch.Name != nil {
		sc.Name = *patch.Name
	}
	if patch.Budget != nil {
		sc.Budget = *patch.Budget
	}
	if patch.Name != nil || patch.Budget != nil {
		sc.UpdatedAt = s.now()
	}
	return cloneSchedule(*sc), nil
}

// DeleteSchedule removes a schedule and its items. Deleting the active
// schedule clears the schedule half of the selection.
func (s *Store) DeleteSchedule(projectID, scheduleID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return notFound(KindProject, projectID)
	}
	for i := range p.Schedules {
		if p.Schedules[i].ID != scheduleID {
			continue
		}
		p.Schedules = append(p.Schedules[:i], p.Schedules[i+1:]...)
		if s.currentScheduleID == scheduleID {
			s.currentScheduleID = uuid.Nil
		}
		return nil
	}
	return notFound(KindSchedule, scheduleID)
}
