package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/model"
	"github.com/specbook-io/specbook/internal/modules/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductSource is a mock implementation of ProductSource
type MockProductSource struct {
	mock.Mock
}

func (m *MockProductSource) Get(id uuid.UUID) (model.Product, bool) {
	args := m.Called(id)
	return args.Get(0).(model.Product), args.Bool(1)
}

func loungeChair(id uuid.UUID) model.Product {
	return model.Product{
		ID:       id,
		Name:     "Modern Lounge Chair",
		Category: "Seating",
		Brand:    "ComfortPlus",
		Price:    599.99,
		Image:    "https://example.com/chair.jpg",
		Specifications: model.Specifications{
			Material:   "Leather",
			Dimensions: "76x82x85cm",
			Weight:     "15kg",
		},
	}
}

func setupProject(t *testing.T, s *store.Store) (projectID, scheduleID, categoryID uuid.UUID) {
	t.Helper()
	p, err := s.CreateProject("Grand Hotel", 0, "")
	assert.NoError(t, err)
	sc, err := s.CreateSchedule(p.ID, "Level 1", 0)
	assert.NoError(t, err)
	cat, err := s.CreateCategory(p.ID, "Seating", "SEA")
	assert.NoError(t, err)
	return p.ID, sc.ID, cat.ID
}

func TestItemService_AddFromProduct(t *testing.T) {
	s := store.New()
	projectID, scheduleID, categoryID := setupProject(t, s)

	productID := uuid.New()
	src := &MockProductSource{}
	src.On("Get", productID).Return(loungeChair(productID), true)

	svc := NewItemService(s, src)
	item, err := svc.AddFromProduct(context.Background(), AddItemInput{
		ProjectID:  projectID,
		ScheduleID: scheduleID,
		CategoryID: categoryID,
		ProductID:  productID,
		Quantity:   3,
	})
	assert.NoError(t, err)

	// product fields are copied into the item
	assert.Equal(t, "Seating", item.Category)
	assert.Equal(t, "Modern Lounge Chair", item.Name)
	assert.Equal(t, "Modern Lounge Chair", item.Product)
	assert.Equal(t, "ComfortPlus", item.Brand)
	assert.Equal(t, "76x82x85cm", item.Dimensions)
	assert.Equal(t, "Leather", item.Material)
	assert.Equal(t, "https://example.com/chair.jpg", item.Image)
	assert.Equal(t, 599.99, item.Price)
	assert.Equal(t, 3, item.Quantity)

	// materialization defaults
	assert.Equal(t, model.StatusPending, item.Status)
	assert.Equal(t, "4-6 weeks", item.LeadTime)
	assert.Empty(t, item.Finish)
	assert.Empty(t, item.Supplier)
	assert.Equal(t, []string{}, item.Alternatives)
	assert.True(t, strings.HasPrefix(item.ProductCode, "SEA-"))
	assert.Len(t, item.ProductCode, len("SEA-")+6)

	// the item landed in the schedule
	sc, err := s.GetSchedule(projectID, scheduleID)
	assert.NoError(t, err)
	assert.Len(t, sc.Items, 1)
	src.AssertExpectations(t)
}

func TestItemService_AddFromProduct_ProductLeadTimeWins(t *testing.T) {
	s := store.New()
	projectID, scheduleID, categoryID := setupProject(t, s)

	productID := uuid.New()
	product := loungeChair(productID)
	product.LeadTime = "10-12 wks"
	src := &MockProductSource{}
	src.On("Get", productID).Return(product, true)

	svc := NewItemService(s, src)
	item, err := svc.AddFromProduct(context.Background(), AddItemInput{
		ProjectID:  projectID,
		ScheduleID: scheduleID,
		CategoryID: categoryID,
		ProductID:  productID,
		Quantity:   1,
	})
	assert.NoError(t, err)
	assert.Equal(t, "10-12 wks", item.LeadTime)
}

func TestItemService_AddFromProduct_QuantityDefaultsToOne(t *testing.T) {
	s := store.New()
	projectID, scheduleID, categoryID := setupProject(t, s)

	productID := uuid.New()
	src := &MockProductSource{}
	src.On("Get", productID).Return(loungeChair(productID), true)

	svc := NewItemService(s, src)
	item, err := svc.AddFromProduct(context.Background(), AddItemInput{
		ProjectID:  projectID,
		ScheduleID: scheduleID,
		CategoryID: categoryID,
		ProductID:  productID,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestItemService_AddFromProduct_UnknownProduct(t *testing.T) {
	s := store.New()
	projectID, scheduleID, categoryID := setupProject(t, s)

	productID := uuid.New()
	src := &MockProductSource{}
	src.On("Get", productID).Return(model.Product{}, false)

	svc := NewItemService(s, src)
	_, err := svc.AddFromProduct(context.Background(), AddItemInput{
		ProjectID:  projectID,
		ScheduleID: scheduleID,
		CategoryID: categoryID,
		ProductID:  productID,
	})
	var nf *store.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, store.KindProduct, nf.Kind)
}

func TestItemService_AddFromProduct_UnknownCategory(t *testing.T) {
	s := store.New()
	projectID, scheduleID, _ := setupProject(t, s)

	productID := uuid.New()
	src := &MockProductSource{}
	src.On("Get", productID).Return(loungeChair(productID), true)

	svc := NewItemService(s, src)
	_, err := svc.AddFromProduct(context.Background(), AddItemInput{
		ProjectID:  projectID,
		ScheduleID: scheduleID,
		CategoryID: uuid.New(),
		ProductID:  productID,
	})
	var nf *store.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, store.KindCategory, nf.Kind)
}
