package store

import (
	"strings"

	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/model"
)

// CategoryPatch carries a partial category update.
type CategoryPatch struct {
	Name   *string `json:"name,omitempty"`
	Prefix *string `json:"prefix,omitempty"`
}

func validPrefix(prefix string) error {
	if prefix == "" {
		return invalid("prefix", "must not be blank")
	}
	if len(prefix) > 3 {
		return invalid("prefix", "must be at most 3 characters")
	}
	return nil
}

// CreateCategory appends a new category definition to a project. The prefix
// is upper-cased at this boundary.
func (s *Store) CreateCategory(projectID uuid.UUID, name, prefix string) (model.Category, error) {
	if strings.TrimSpace(name) == "" {
		return model.Category{}, invalid("name", "must not be blank")
	}
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if err := validPrefix(prefix); err != nil {
		return model.Category{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return model.Category{}, notFound(KindProject, projectID)
	}

	now := s.now()
	c := model.Category{
		ID:        uuid.New(),
		Name:      name,
		Prefix:    prefix,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.Categories = append(p.Categories, c)
	return c, nil
}

// ListCategories returns a project's categories in creation order.
func (s *Store) ListCategories(projectID uuid.UUID) ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.findProject(projectID)
	if p == nil {
		return nil, notFound(KindProject, projectID)
	}
	out := make([]model.Category, len(p.Categories))
	copy(out, p.Categories)
	return out, nil
}

// UpdateCategory applies a partial update. Renaming a category does not
// relabel items tagged with the old name; they keep the denormalized name
// and drop out of grouped views.
func (s *Store) UpdateCategory(projectID, categoryID uuid.UUID, patch CategoryPatch) (model.Category, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return model.Category{}, invalid("name", "must not be blank")
	}
	var prefix string
	if patch.Prefix != nil {
		prefix = strings.ToUpper(strings.TrimSpace(*patch.Prefix))
		if err := validPrefix(prefix); err != nil {
			return model.Category{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return model.Category{}, notFound(KindProject, projectID)
	}
	c := findCategory(p, categoryID)
	if c == nil {
		return model.Category{}, notFound(KindCategory, categoryID)
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Prefix != nil {
		c.Prefix = prefix
	}
	if patch.Name != nil || patch.Prefix != nil {
		c.UpdatedAt = s.now()
	}
	return *c, nil
}

// DeleteCategory removes a category definition. Existing items keep their
// denormalized category name.
func (s *Store) DeleteCategory(projectID, categoryID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProject(projectID)
	if p == nil {
		return notFound(KindProject, projectID)
	}
	for i := range p.Categories {
		if p.Categories[i].ID != categoryID {
			continue
		}
		p.Categories = append(p.Categories[:i], p.Categories[i+1:]...)
		return nil
	}
	return notFound(KindCategory, categoryID)
}
