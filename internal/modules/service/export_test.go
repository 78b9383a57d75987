package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/model"
	"github.com/specbook-io/specbook/internal/modules/report"
	"github.com/specbook-io/specbook/internal/modules/store"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestExportService_Export(t *testing.T) {
	s := store.New()
	p, _ := s.CreateProject("Grand Hotel", 0, "Grand Hospitality")
	sc, _ := s.CreateSchedule(p.ID, "Level 1", 0)
	_, err := s.AddItem(p.ID, sc.ID, model.Item{
		Category: "Seating",
		Name:     "Panton Chair",
		Quantity: 2,
		Price:    450,
		Status:   model.StatusApproved,
	})
	assert.NoError(t, err)

	renderer := report.NewRenderer(report.NewGenerator(), zap.NewNop())
	svc := NewExportService(s, renderer, "Acme Design Studio", zap.NewNop())

	out, err := svc.Export(context.Background(), ExportInput{
		ProjectID:  p.ID,
		ScheduleID: sc.ID,
		Theme:      report.ThemeModern,
		Columns:    report.AllColumns(),
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestExportService_Export_UnknownSchedule(t *testing.T) {
	s := store.New()
	p, _ := s.CreateProject("Grand Hotel", 0, "")

	renderer := report.NewRenderer(report.NewGenerator(), zap.NewNop())
	svc := NewExportService(s, renderer, "Acme Design Studio", zap.NewNop())

	_, err := svc.Export(context.Background(), ExportInput{
		ProjectID:  p.ID,
		ScheduleID: uuid.New(),
		Theme:      report.ThemeModern,
		Columns:    report.AllColumns(),
	})
	var nf *store.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestExportService_Export_FailedRenderLeavesStore(t *testing.T) {
	s := store.New()
	p, _ := s.CreateProject("Grand Hotel", 0, "")
	sc, _ := s.CreateSchedule(p.ID, "Level 1", 0)

	renderer := report.NewRenderer(report.NewGenerator(), zap.NewNop())
	svc := NewExportService(s, renderer, "Acme Design Studio", zap.NewNop())

	// no visible columns makes the render fail
	_, err := svc.Export(context.Background(), ExportInput{
		ProjectID:  p.ID,
		ScheduleID: sc.ID,
		Theme:      report.ThemeModern,
		Columns:    report.Visibility{},
	})
	assert.Error(t, err)

	// the failure never touches stored data
	got, err := s.GetSchedule(p.ID, sc.ID)
	assert.NoError(t, err)
	assert.Equal(t, sc.Name, got.Name)
}
