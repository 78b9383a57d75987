// Package budget derives totals and grouped views from store snapshots.
// Everything here is a pure function over its arguments, recomputed on every
// read; nothing is cached across mutations.
package budget

import (
	"github.com/specbook-io/specbook/internal/modules/model"
)

// GroupItemsByCategory buckets a schedule's items under the project's
// category names. Every known category appears as a key, empty slice
// included, so consumers can render "no items yet" sections. Items whose
// category matches no known category are dropped from every group.
func GroupItemsByCategory(schedule model.Schedule, categories []model.Category) map[string][]model.Item {
	groups := make(map[string][]model.Item, len(categories))
	for _, c := range categories {
		groups[c.Name] = []model.Item{}
	}
	for _, it := range schedule.Items {
		if _, ok := groups[it.Category]; !ok {
			continue
		}
		groups[it.Category] = append(groups[it.Category], it)
	}
	return groups
}

// CategoryTotal sums price*quantity over a group of items.
func CategoryTotal(items []model.Item) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// ScheduleTotal sums price*quantity over every item in the schedule.
func ScheduleTotal(schedule model.Schedule) float64 {
	return CategoryTotal(schedule.Items)
}

// RemainingScheduleBudget is budget minus spend. Negative when overspent;
// never clamped.
func RemainingScheduleBudget(schedule model.Schedule) float64 {
	return schedule.Budget - ScheduleTotal(schedule)
}

// AllocatedBudget sums the budgets of a project's schedules.
func AllocatedBudget(project model.Project) float64 {
	total := 0.0
	for _, sc := range project.Schedules {
		total += sc.Budget
	}
	return total
}

// RemainingProjectBudget is the unallocated part of the project budget. Used
// at schedule-creation validation only, never re-enforced afterwards.
func RemainingProjectBudget(project model.Project) float64 {
	return project.TotalBudget - AllocatedBudget(project)
}

// Summary is the budget banner rendered above a schedule.
type Summary struct {
	ProjectBudget     float64 `json:"project_budget"`
	ScheduleBudget    float64 `json:"schedule_budget"`
	TotalSpent        float64 `json:"total_spent"`
	RemainingSchedule float64 `json:"remaining_schedule"`
	RemainingProject  float64 `json:"remaining_project"`
}

// Summarize computes the banner figures for one schedule of a project.
func Summarize(project model.Project, schedule model.Schedule) Summary {
	spent := ScheduleTotal(schedule)
	return Summary{
		ProjectBudget:     project.TotalBudget,
		ScheduleBudget:    schedule.Budget,
		TotalSpent:        spent,
		RemainingSchedule: schedule.Budget - spent,
		RemainingProject:  RemainingProjectBudget(project),
	}
}
