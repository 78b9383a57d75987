package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/model"
)

// Store is the single source of truth for projects, schedules, categories and
// items. State is process-local and ephemeral; every read hands out deep
// copies so callers can never alias internal state. A Store is constructed
// explicitly and passed in wherever it is needed.
type Store struct {
	mu       sync.RWMutex
	projects []model.Project

	// Active selection. uuid.Nil means unset. Cascading deletes clear
	// whatever part of the selection pointed into the deleted subtree.
	currentProjectID  uuid.UUID
	currentScheduleID uuid.UUID

	now func() time.Time
}

// New returns an empty store.
func New() *Store {
	return &Store{now: time.Now}
}

// Selection is the current project/schedule pointer pair.
type Selection struct {
	ProjectID  uuid.UUID `json:"project_id"`
	ScheduleID uuid.UUID `json:"schedule_id"`
}

// CurrentSelection returns the active selection. Either half may be uuid.Nil.
func (s *Store) CurrentSelection() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Selection{ProjectID: s.currentProjectID, ScheduleID: s.currentScheduleID}
}

// SetSelection points the active selection at a project and optionally one of
// its schedules. A Nil scheduleID selects only the project.
func (s *Store) SetSelection(projectID, scheduleID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return notFound(KindProject, projectID)
	}
	if scheduleID != uuid.Nil && findSchedule(p, scheduleID) == nil {
		return notFound(KindSchedule, scheduleID)
	}
	s.currentProjectID = projectID
	s.currentScheduleID = scheduleID
	return nil
}

// findProject returns a pointer into the live slice. Callers must hold mu and
// must not leak the pointer past the critical section.
func (s *Store) findProject(id uuid.UUID) *model.Project {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return &s.projects[i]
		}
	}
	return nil
}

func findSchedule(p *model.Project, id uuid.UUID) *model.Schedule {
	for i := range p.Schedules {
		if p.Schedules[i].ID == id {
			return &p.Schedules[i]
		}
	}
	return nil
}

func findCategory(p *model.Project, id uuid.UUID) *model.Category {
	for i := range p.Categories {
		if p.Categories[i].ID == id {
			return &p.Categories[i]
		}
	}
	return nil
}

func findItem(sc *model.Schedule, id uuid.UUID) *model.Item {
	for i := range sc.Items {
		if sc.Items[i].ID == id {
			return &sc.Items[i]
		}
	}
	return nil
}

func cloneItem(it model.Item) model.Item {
	out := it
	out.Alternatives = make([]string, len(it.Alternatives))
	copy(out.Alternatives, it.Alternatives)
	return out
}

func cloneSchedule(sc model.Schedule) model.Schedule {
	out := sc
	out.Items = make([]model.Item, len(sc.Items))
	for i, it := range sc.Items {
		out.Items[i] = cloneItem(it)
	}
	return out
}

func cloneProject(p model.Project) model.Project {
	out := p
	out.Schedules = make([]model.Schedule, len(p.Schedules))
	for i, sc := range p.Schedules {
		out.Schedules[i] = cloneSchedule(sc)
	}
	out.Categories = make([]model.Category, len(p.Categories))
	copy(out.Categories, p.Categories)
	return out
}
