package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/budget"
	"github.com/specbook-io/specbook/internal/modules/model"
	"github.com/specbook-io/specbook/internal/modules/store"
)

// ScheduleDetail is the full read view of one schedule: the schedule itself
// plus the derived groupings and budget figures, recomputed on every call.
type ScheduleDetail struct {
	Schedule       model.Schedule          `json:"schedule"`
	Groups         map[string][]model.Item `json:"groups"`
	CategoryTotals map[string]float64      `json:"category_totals"`
	Summary        budget.Summary          `json:"summary"`
}

type ScheduleService interface {
	Create(ctx context.Context, projectID uuid.UUID, name string, budget float64) (model.Schedule, error)
	Detail(ctx context.Context, projectID, scheduleID uuid.UUID) (ScheduleDetail, error)
	Update(ctx context.Context, projectID, scheduleID uuid.UUID, patch store.SchedulePatch) (model.Schedule, error)
	Delete(ctx context.Context, projectID, scheduleID uuid.UUID) error
}

type scheduleService struct{ s *store.Store }

func NewScheduleService(s *store.Store) ScheduleService {
	return &scheduleService{s: s}
}

func (s *scheduleService) Create(ctx context.Context, projectID uuid.UUID, name string, b float64) (model.Schedule, error) {
	return s.s.CreateSchedule(projectID, name, b)
}

func (s *scheduleService) Detail(ctx context.Context, projectID, scheduleID uuid.UUID) (ScheduleDetail, error) {
	p, err := s.s.GetProject(projectID)
	if err != nil {
		return ScheduleDetail{}, err
	}
	sc, err := s.s.GetSchedule(projectID, scheduleID)
	if err != nil {
		return ScheduleDetail{}, err
	}

	groups := budget.GroupItemsByCategory(sc, p.Categories)
	totals := make(map[string]float64, len(groups))
	for name, items := range groups {
		totals[name] = budget.CategoryTotal(items)
	}
	return ScheduleDetail{
		Schedule:       sc,
		Groups:         groups,
		CategoryTotals: totals,
		Summary:        budget.Summarize(p, sc),
	}, nil
}

func (s *scheduleService) Update(ctx context.Context, projectID, scheduleID uuid.UUID, patch store.SchedulePatch) (model.Schedule, error) {
	return s.s.UpdateSchedule(projectID, scheduleID, patch)
}

func (s *scheduleService) Delete(ctx context.Context, projectID, scheduleID uuid.UUID) error {
	return s.s.DeleteSchedule(projectID, scheduleID)
}
