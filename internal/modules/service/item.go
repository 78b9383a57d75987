package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/model"
	"github.com/specbook-io/specbook/internal/modules/store"
	"github.com/specbook-io/specbook/internal/pkg/codegen"
)

// defaultLeadTime is the placeholder used when the product carries no lead
// time of its own.
const defaultLeadTime = "4-6 weeks"

// ProductSource resolves catalog products. Satisfied by catalog.Catalog.
type ProductSource interface {
	Get(id uuid.UUID) (model.Product, bool)
}

// AddItemInput targets a materialization: which product, how many, and where
// the resulting item lives.
type AddItemInput struct {
	ProjectID  uuid.UUID
	ScheduleID uuid.UUID
	CategoryID uuid.UUID
	ProductID  uuid.UUID
	Quantity   int
}

type ItemService interface {
	AddFromProduct(ctx context.Context, in AddItemInput) (model.Item, error)
	Update(ctx context.Context, projectID, scheduleID, itemID uuid.UUID, patch model.ItemPatch) (model.Item, error)
	Delete(ctx context.Context, projectID, scheduleID, itemID uuid.UUID) error
}

type itemService struct {
	s       *store.Store
	catalog ProductSource
}

func NewItemService(s *store.Store, catalog ProductSource) ItemService {
	return &itemService{s: s, catalog: catalog}
}

// AddFromProduct materializes a catalog product into a schedule item: fields
// are copied from the product, status starts Pending, and the product code is
// the owning category's prefix plus a random six-character suffix. A quantity
// of zero or less defaults to one.
func (i *itemService) AddFromProduct(ctx context.Context, in AddItemInput) (model.Item, error) {
	product, ok := i.catalog.Get(in.ProductID)
	if !ok {
		return model.Item{}, &store.NotFoundError{Kind: store.KindProduct, ID: in.ProductID}
	}

	categories, err := i.s.ListCategories(in.ProjectID)
	if err != nil {
		return model.Item{}, err
	}
	var category *model.Category
	for idx := range categories {
		if categories[idx].ID == in.CategoryID {
			category = &categories[idx]
			break
		}
	}
	if category == nil {
		return model.Item{}, &store.NotFoundError{Kind: store.KindCategory, ID: in.CategoryID}
	}

	code, err := codegen.ProductCode(category.Prefix)
	if err != nil {
		return model.Item{}, err
	}

	quantity := in.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	leadTime := product.LeadTime
	if leadTime == "" {
		leadTime = defaultLeadTime
	}

	item := model.Item{
		Category:     category.Name,
		Name:         product.Name,
		Product:      product.Name,
		ProductCode:  code,
		Brand:        product.Brand,
		Dimensions:   product.Specifications.Dimensions,
		Material:     product.Specifications.Material,
		Finish:       "",
		Quantity:     quantity,
		LeadTime:     leadTime,
		Supplier:     "",
		Status:       model.StatusPending,
		Image:        product.Image,
		Price:        product.Price,
		Alternatives: []string{},
	}
	return i.s.AddItem(in.ProjectID, in.ScheduleID, item)
}

func (i *itemService) Update(ctx context.Context, projectID, scheduleID, itemID uuid.UUID, patch model.ItemPatch) (model.Item, error) {
	return i.s.UpdateItem(projectID, scheduleID, itemID, patch)
}

func (i *itemService) Delete(ctx context.Context, projectID, scheduleID, itemID uuid.UUID) error {
	return i.s.DeleteItem(projectID, scheduleID, itemID)
}
