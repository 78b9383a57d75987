package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/model"
	"github.com/specbook-io/specbook/internal/modules/service"
	"github.com/specbook-io/specbook/internal/modules/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockItemService is a mock implementation of ItemService
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) AddFromProduct(ctx context.Context, in service.AddItemInput) (model.Item, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Item), args.Error(1)
}

func (m *MockItemService) Update(ctx context.Context, projectID, scheduleID, itemID uuid.UUID, patch model.ItemPatch) (model.Item, error) {
	args := m.Called(ctx, projectID, scheduleID, itemID, patch)
	return args.Get(0).(model.Item), args.Error(1)
}

func (m *MockItemService) Delete(ctx context.Context, projectID, scheduleID, itemID uuid.UUID) error {
	args := m.Called(ctx, projectID, scheduleID, itemID)
	return args.Error(0)
}

func itemPath(projectID, scheduleID uuid.UUID) string {
	return "/project/" + projectID.String() + "/schedule/" + scheduleID.String() + "/item"
}

func TestItemHandler_AddItem(t *testing.T) {
	projectID := uuid.New()
	scheduleID := uuid.New()
	categoryID := uuid.New()
	productID := uuid.New()

	tests := []struct {
		name           string
		requestBody    AddItemReq
		setup          func(*MockItemService)
		expectedStatus int
	}{
		{
			name:        "successful materialization",
			requestBody: AddItemReq{CategoryID: categoryID, ProductID: productID, Quantity: 2},
			setup: func(svc *MockItemService) {
				svc.On("AddFromProduct", mock.Anything, service.AddItemInput{
					ProjectID:  projectID,
					ScheduleID: scheduleID,
					CategoryID: categoryID,
					ProductID:  productID,
					Quantity:   2,
				}).Return(model.Item{ID: uuid.New(), Name: "Lounge Chair", Quantity: 2}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing product ID",
			requestBody:    AddItemReq{CategoryID: categoryID},
			setup:          func(svc *MockItemService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "unknown product",
			requestBody: AddItemReq{CategoryID: categoryID, ProductID: productID, Quantity: 1},
			setup: func(svc *MockItemService) {
				svc.On("AddFromProduct", mock.Anything, mock.Anything).
					Return(model.Item{}, notFoundErr(store.KindProduct))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockItemService{}
			tt.setup(mockService)

			handler := NewItemHandler(mockService)
			router := setupRouter()
			router.POST("/project/:project_id/schedule/:schedule_id/item", handler.AddItem)

			body, _ := sonic.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", itemPath(projectID, scheduleID), bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestItemHandler_UpdateItem(t *testing.T) {
	projectID := uuid.New()
	scheduleID := uuid.New()
	itemID := uuid.New()
	quantity := 5

	tests := []struct {
		name           string
		itemIDParam    string
		requestBody    model.ItemPatch
		setup          func(*MockItemService)
		expectedStatus int
	}{
		{
			name:        "successful patch",
			itemIDParam: itemID.String(),
			requestBody: model.ItemPatch{Quantity: &quantity},
			setup: func(svc *MockItemService) {
				svc.On("Update", mock.Anything, projectID, scheduleID, itemID,
					mock.MatchedBy(func(p model.ItemPatch) bool {
						return p.Quantity != nil && *p.Quantity == 5
					})).Return(model.Item{ID: itemID, Quantity: 5}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid item ID",
			itemIDParam:    "not-a-uuid",
			requestBody:    model.ItemPatch{},
			setup:          func(svc *MockItemService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "unknown item",
			itemIDParam: itemID.String(),
			requestBody: model.ItemPatch{Quantity: &quantity},
			setup: func(svc *MockItemService) {
				svc.On("Update", mock.Anything, projectID, scheduleID, itemID, mock.Anything).
					Return(model.Item{}, notFoundErr(store.KindItem))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockItemService{}
			tt.setup(mockService)

			handler := NewItemHandler(mockService)
			router := setupRouter()
			router.PATCH("/project/:project_id/schedule/:schedule_id/item/:item_id", handler.UpdateItem)

			body, _ := sonic.Marshal(tt.requestBody)
			req := httptest.NewRequest("PATCH", itemPath(projectID, scheduleID)+"/"+tt.itemIDParam, bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestItemHandler_DeleteItem(t *testing.T) {
	projectID := uuid.New()
	scheduleID := uuid.New()
	itemID := uuid.New()

	tests := []struct {
		name           string
		setup          func(*MockItemService)
		expectedStatus int
	}{
		{
			name: "successful deletion",
			setup: func(svc *MockItemService) {
				svc.On("Delete", mock.Anything, projectID, scheduleID, itemID).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown item",
			setup: func(svc *MockItemService) {
				svc.On("Delete", mock.Anything, projectID, scheduleID, itemID).
					Return(notFoundErr(store.KindItem))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockItemService{}
			tt.setup(mockService)

			handler := NewItemHandler(mockService)
			router := setupRouter()
			router.DELETE("/project/:project_id/schedule/:schedule_id/item/:item_id", handler.DeleteItem)

			req := httptest.NewRequest("DELETE", itemPath(projectID, scheduleID)+"/"+itemID.String(), nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
