package budget

import (
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/specbook-io/specbook/internal/modules/model"
	"github.com/stretchr/testify/assert"
)

func item(category string, price float64, quantity int) model.Item {
	return model.Item{
		ID:       uuid.New(),
		Category: category,
		Name:     "item",
		Price:    price,
		Quantity: quantity,
		Status:   model.StatusPending,
	}
}

func category(name string) model.Category {
	return model.Category{ID: uuid.New(), Name: name, Prefix: "XXX"}
}

func TestGroupItemsByCategory(t *testing.T) {
	cats := []model.Category{category("Seating"), category("Lighting")}
	sc := model.Schedule{Items: []model.Item{
		item("Seating", 100, 1),
		item("Lighting", 50, 2),
		item("Seating", 200, 1),
		item("Rugs", 75, 1), // matches no category, dropped
	}}

	groups := GroupItemsByCategory(sc, cats)
	assert.Len(t, groups, 2)
	assert.Len(t, groups["Seating"], 2)
	assert.Len(t, groups["Lighting"], 1)
	assert.NotContains(t, groups, "Rugs")
}

func TestGroupItemsByCategory_EmptyCategoriesKeepKeys(t *testing.T) {
	cats := []model.Category{category("Seating"), category("Lighting")}
	groups := GroupItemsByCategory(model.Schedule{Items: []model.Item{}}, cats)

	assert.Len(t, groups, 2)
	assert.NotNil(t, groups["Seating"])
	assert.Empty(t, groups["Seating"])
	assert.NotNil(t, groups["Lighting"])
	assert.Empty(t, groups["Lighting"])
}

func TestScheduleTotal(t *testing.T) {
	sc := model.Schedule{Items: []model.Item{
		item("Seating", 450, 2),
		item("Lighting", 100, 1),
	}}
	assert.Equal(t, 1000.0, ScheduleTotal(sc))
	assert.Equal(t, 0.0, ScheduleTotal(model.Schedule{}))
}

func TestRemainingScheduleBudget_NeverClamped(t *testing.T) {
	sc := model.Schedule{Budget: 100, Items: []model.Item{item("Seating", 150, 1)}}
	assert.Equal(t, -50.0, RemainingScheduleBudget(sc))
}

func TestSummarize(t *testing.T) {
	p := model.Project{
		TotalBudget: 100000,
		Schedules: []model.Schedule{
			{Budget: 50000},
			{Budget: 20000},
		},
	}
	sc := model.Schedule{
		Budget: 50000,
		Items:  []model.Item{item("Seating", 450, 2)},
	}

	sum := Summarize(p, sc)
	assert.Equal(t, 100000.0, sum.ProjectBudget)
	assert.Equal(t, 50000.0, sum.ScheduleBudget)
	assert.Equal(t, 900.0, sum.TotalSpent)
	assert.Equal(t, 49100.0, sum.RemainingSchedule)
	assert.Equal(t, 30000.0, sum.RemainingProject)
}

func TestAllocatedBudget(t *testing.T) {
	p := model.Project{Schedules: []model.Schedule{{Budget: 10}, {Budget: 32}}}
	assert.Equal(t, 42.0, AllocatedBudget(p))
	assert.Equal(t, 0.0, AllocatedBudget(model.Project{}))
}

// Grouping over the full category set partitions the matched items: every
// item lands in exactly one group and group totals sum to the total of the
// matched items.
func TestProperty_GroupingPartitionsItems(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	names := []string{"Seating", "Lighting", "Tables", "Rugs"}

	properties.Property("groups partition matched items and totals agree", prop.ForAll(
		func(picks []int, knownCount int) bool {
			cats := make([]model.Category, knownCount)
			known := map[string]bool{}
			for i := 0; i < knownCount; i++ {
				cats[i] = category(names[i])
				known[names[i]] = true
			}

			sc := model.Schedule{}
			matchedTotal := 0.0
			matched := 0
			for _, pick := range picks {
				name := names[pick%len(names)]
				it := item(name, float64(pick%7)*10, pick%3+1)
				sc.Items = append(sc.Items, it)
				if known[name] {
					matchedTotal += it.Price * float64(it.Quantity)
					matched++
				}
			}

			groups := GroupItemsByCategory(sc, cats)
			if len(groups) != knownCount {
				return false
			}
			grouped := 0
			groupedTotal := 0.0
			for _, items := range groups {
				grouped += len(items)
				groupedTotal += CategoryTotal(items)
			}
			return grouped == matched && groupedTotal == matchedTotal
		},
		gen.SliceOf(gen.IntRange(0, 100)),
		gen.IntRange(0, len(names)),
	))

	properties.TestingRun(t)
}
