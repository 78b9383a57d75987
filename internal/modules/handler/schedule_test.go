package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/budget"
	"github.com/specbook-io/specbook/internal/modules/model"
	"github.com/specbook-io/specbook/internal/modules/service"
	"github.com/specbook-io/specbook/internal/modules/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockScheduleService is a mock implementation of ScheduleService
type MockScheduleService struct {
	mock.Mock
}

func (m *MockScheduleService) Create(ctx context.Context, projectID uuid.UUID, name string, budget float64) (model.Schedule, error) {
	args := m.Called(ctx, projectID, name, budget)
	return args.Get(0).(model.Schedule), args.Error(1)
}

func (m *MockScheduleService) Detail(ctx context.Context, projectID, scheduleID uuid.UUID) (service.ScheduleDetail, error) {
	args := m.Called(ctx, projectID, scheduleID)
	return args.Get(0).(service.ScheduleDetail), args.Error(1)
}

func (m *MockScheduleService) Update(ctx context.Context, projectID, scheduleID uuid.UUID, patch store.SchedulePatch) (model.Schedule, error) {
	args := m.Called(ctx, projectID, scheduleID, patch)
	return args.Get(0).(model.Schedule), args.Error(1)
}

func (m *MockScheduleService) Delete(ctx context.Context, projectID, scheduleID uuid.UUID) error {
	args := m.Called(ctx, projectID, scheduleID)
	return args.Error(0)
}

func TestScheduleHandler_CreateSchedule(t *testing.T) {
	projectID := uuid.New()

	tests := []struct {
		name           string
		requestBody    CreateScheduleReq
		setup          func(*MockScheduleService)
		expectedStatus int
	}{
		{
			name:        "successful schedule creation",
			requestBody: CreateScheduleReq{Name: "Level 1", Budget: 50000},
			setup: func(svc *MockScheduleService) {
				svc.On("Create", mock.Anything, projectID, "Level 1", 50000.0).
					Return(model.Schedule{ID: uuid.New(), Name: "Level 1", Budget: 50000}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			requestBody:    CreateScheduleReq{Budget: 100},
			setup:          func(svc *MockScheduleService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "budget exceeds project allocation",
			requestBody: CreateScheduleReq{Name: "Level 2", Budget: 90000},
			setup: func(svc *MockScheduleService) {
				svc.On("Create", mock.Anything, projectID, "Level 2", 90000.0).
					Return(model.Schedule{}, &store.ValidationError{Field: "budget", Reason: "exceeds remaining project budget"})
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockScheduleService{}
			tt.setup(mockService)

			handler := NewScheduleHandler(mockService)
			router := setupRouter()
			router.POST("/project/:project_id/schedule", handler.CreateSchedule)

			body, _ := sonic.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/project/"+projectID.String()+"/schedule", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestScheduleHandler_GetSchedule(t *testing.T) {
	projectID := uuid.New()
	scheduleID := uuid.New()

	tests := []struct {
		name           string
		scheduleParam  string
		setup          func(*MockScheduleService)
		expectedStatus int
	}{
		{
			name:          "successful detail retrieval",
			scheduleParam: scheduleID.String(),
			setup: func(svc *MockScheduleService) {
				svc.On("Detail", mock.Anything, projectID, scheduleID).
					Return(service.ScheduleDetail{
						Schedule: model.Schedule{ID: scheduleID, Name: "Level 1"},
						Groups:   map[string][]model.Item{"Seating": {}},
						Summary:  budget.Summary{ScheduleBudget: 50000},
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid schedule ID",
			scheduleParam:  "not-a-uuid",
			setup:          func(svc *MockScheduleService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:          "unknown schedule",
			scheduleParam: scheduleID.String(),
			setup: func(svc *MockScheduleService) {
				svc.On("Detail", mock.Anything, projectID, scheduleID).
					Return(service.ScheduleDetail{}, notFoundErr(store.KindSchedule))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockScheduleService{}
			tt.setup(mockService)

			handler := NewScheduleHandler(mockService)
			router := setupRouter()
			router.GET("/project/:project_id/schedule/:schedule_id", handler.GetSchedule)

			req := httptest.NewRequest("GET", "/project/"+projectID.String()+"/schedule/"+tt.scheduleParam, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestScheduleHandler_DeleteSchedule(t *testing.T) {
	projectID := uuid.New()
	scheduleID := uuid.New()

	tests := []struct {
		name           string
		setup          func(*MockScheduleService)
		expectedStatus int
	}{
		{
			name: "successful deletion",
			setup: func(svc *MockScheduleService) {
				svc.On("Delete", mock.Anything, projectID, scheduleID).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown schedule",
			setup: func(svc *MockScheduleService) {
				svc.On("Delete", mock.Anything, projectID, scheduleID).
					Return(notFoundErr(store.KindSchedule))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockScheduleService{}
			tt.setup(mockService)

			handler := NewScheduleHandler(mockService)
			router := setupRouter()
			router.DELETE("/project/:project_id/schedule/:schedule_id", handler.DeleteSchedule)

			req := httptest.NewRequest("DELETE", "/project/"+projectID.String()+"/schedule/"+scheduleID.String(), nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
