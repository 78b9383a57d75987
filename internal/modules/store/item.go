package store

import (
	"strings"

	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/model"
)

// AddItem appends an item to a schedule, assigning its id. Item construction
// from a catalog product happens in the service layer; the store only guards
// its own invariants.
func (s *Store) AddItem(projectID, scheduleID uuid.UUID, item model.Item) (model.Item, error) {
	if strings.TrimSpace(item.Name) == "" {
		return model.Item{}, invalid("name", "must not be blank")
	}
	if item.Quantity < 1 {
		return model.Item{}, invalid("quantity", "must be at least 1")
	}
	if item.Price < 0 {
		return model.Item{}, invalid("price", "must not be negative")
	}
	if !item.Status.Valid() {
		return model.Item{}, invalid("status", "unknown status")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return model.Item{}, notFound(KindProject, projectID)
	}
	sc := findSchedule(p, scheduleID)
	if sc == nil {
		return model.Item{}, notFound(KindSchedule, scheduleID)
	}

	now := s.now()
	item.ID = uuid.New()
	if item.Alternatives == nil {
		item.Alternatives = []string{}
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	sc.Items = append(sc.Items, cloneItem(item))
	return item, nil
}

// GetItem returns one item of a schedule.
func (s *Store) GetItem(projectID, scheduleID, itemID uuid.UUID) (model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.findProject(projectID)
	if p == nil {
		return model.Item{}, notFound(KindProject, projectID)
	}
	sc := findSchedule(p, scheduleID)
	if sc == nil {
		return model.Item{}, notFound(KindSchedule, scheduleID)
	}
	it := findItem(sc, itemID)
	if it == nil {
		return model.Item{}, notFound(KindItem, itemID)
	}
	return cloneItem(*it), nil
}

// UpdateItem applies a partial field patch. An empty patch leaves the item
// identical, timestamps included.
func (s *Store) UpdateItem(projectID, scheduleID, itemID uuid.UUID, patch model.ItemPatch) (model.Item, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return model.Item{}, invalid("name", "must not be blank")
	}
	if patch.Quantity != nil && *patch.Quantity < 1 {
		return model.Item{}, invalid("quantity", "must be at least 1")
	}
	if patch.Price != nil && *patch.Price < 0 {
		return model.Item{}, invalid("price", "must not be negative")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return model.Item{}, invalid("status", "unknown status")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return model.Item{}, notFound(KindProject, projectID)
	}
	sc := findSchedule(p, scheduleID)
	if sc == nil {
		return model.Item{}, notFound(KindSchedule, scheduleID)
	}
	it := findItem(sc, itemID)
	if it == nil {
		return model.Item{}, notFound(KindItem, itemID)
	}

	touched := false
	apply := func(set func()) {
		set()
		touched = true
	}
	if patch.Category != nil {
		apply(func() { it.Category = *patch.Category })
	}
	if patch.Name != nil {
		apply(func() { it.Name = *patch.Name })
	}
	if patch.Product != nil {
		apply(func() { it.Product = *patch.Product })
	}
	if patch.ProductCode != nil {
		apply(func() { it.ProductCode = *patch.ProductCode })
	}
	if patch.Brand != nil {
		apply(func() { it.Brand = *patch.Brand })
	}
	if patch.Dimensions != nil {
		apply(func() { it.Dimensions = *patch.Dimensions })
	}
	if patch.Material != nil {
		apply(func() { it.Material = *patch.Material })
	}
	if patch.Finish != nil {
		apply(func() { it.Finish = *patch.Finish })
	}
	if patch.Quantity != nil {
		apply(func() { it.Quantity = *patch.Quantity })
	}
	if patch.LeadTime != nil {
		apply(func() { it.LeadTime = *patch.LeadTime })
	}
	if patch.Supplier != nil {
		apply(func() { it.Supplier = *patch.Supplier })
	}
	if patch.Status != nil {
		apply(func() { it.Status = *patch.Status })
	}
	if patch.Image != nil {
		apply(func() { it.Image = *patch.Image })
	}
	if patch.Price != nil {
		apply(func() { it.Price = *patch.Price })
	}
	if patch.Location != nil {
		apply(func() { it.Location = *patch.Location })
	}
	if patch.Website != nil {
		apply(func() { it.Website = *patch.Website })
	}
	if patch.Alternatives != nil {
		apply(func() { it.Alternatives = append([]string(nil), (*patch.Alternatives)...) })
	}
	if touched {
		it.UpdatedAt = s.now()
	}
	return cloneItem(*it), nil
}

// DeleteItem removes a single item from its schedule.
func (s *Store) DeleteItem(projectID, scheduleID, itemID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return notFound(KindProject, projectID)
	}
	sc := findSchedule(p, scheduleID)
	if sc == nil {
		return notFound(KindSchedule, scheduleID)
	}
	for i := range sc.Items {
		if sc.Items[i].ID != itemID {
			continue
		}
		sc.Items = append(sc.Items[:i], sc.Items[i+1:]...)
		return nil
	}
	return notFound(KindItem, itemID)
}
