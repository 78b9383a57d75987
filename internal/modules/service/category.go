package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/model"
	"github.com/specbook-io/specbook/internal/modules/store"
)

type CategoryService interface {
	Create(ctx context.Context, projectID uuid.UUID, name, prefix string) (model.Category, error)
	List(ctx context.Context, projectID uuid.UUID) ([]model.Category, error)
	Update(ctx context.Context, projectID, categoryID uuid.UUID, patch store.CategoryPatch) (model.Category, error)
	Delete(ctx context.Context, projectID, categoryID uuid.UUID) error
}

type categoryService struct{ s *store.Store }

func NewCategoryService(s *store.Store) CategoryService {
	return &categoryService{s: s}
}

func (c *categoryService) Create(ctx context.Context, projectID uuid.UUID, name, prefix string) (model.Category, error) {
	return c.s.CreateCategory(projectID, name, prefix)
}

func (c *categoryService) List(ctx context.Context, projectID uuid.UUID) ([]model.Category, error) {
	return c.s.ListCategories(projectID)
}

func (c *categoryService) Update(ctx context.Context, projectID, categoryID uuid.UUID, patch store.CategoryPatch) (model.Category, error) {
	return c.s.UpdateCategory(projectID, categoryID, patch)
}

func (c *categoryService) Delete(ctx context.Context, projectID, categoryID uuid.UUID) error {
	return c.s.DeleteCategory(projectID, categoryID)
}
