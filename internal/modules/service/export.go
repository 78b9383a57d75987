package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/report"
	"github.com/specbook-io/specbook/internal/modules/store"
	"go.uber.org/zap"
)

// ExportInput selects what and how to export.
type ExportInput struct {
	ProjectID  uuid.UUID
	ScheduleID uuid.UUID
	Theme      report.Theme
	Columns    report.Visibility
}

type ExportService interface {
	Export(ctx context.Context, in ExportInput) ([]byte, error)
}

type exportService struct {
	s        *store.Store
	renderer *report.Renderer
	orgName  string
	log      *zap.Logger
}

func NewExportService(s *store.Store, renderer *report.Renderer, orgName string, log *zap.Logger) ExportService {
	return &exportService{s: s, renderer: renderer, orgName: orgName, log: log}
}

// Export renders the schedule's items into a themed PDF. Rendering reads the
// same item set the grouped views read; it never mutates the store, so a
// failed render loses nothing.
func (e *exportService) Export(ctx context.Context, in ExportInput) ([]byte, error) {
	p, err := e.s.GetProject(in.ProjectID)
	if err != nil {
		return nil, err
	}
	sc, err := e.s.GetSchedule(in.ProjectID, in.ScheduleID)
	if err != nil {
		return nil, err
	}

	out, err := e.renderer.Render(ctx, sc.Items, report.Options{
		Theme:            in.Theme,
		Columns:          in.Columns,
		ProjectName:      p.Name,
		ScheduleName:     sc.Name,
		ClientName:       p.ClientName,
		OrganizationName: e.orgName,
	})
	if err != nil {
		return nil, err
	}
	e.log.Sugar().Infow("schedule exported",
		"project", p.Name,
		"schedule", sc.Name,
		"theme", in.Theme,
		"items", len(sc.Items),
		"bytes", len(out),
	)
	return out, nil
}
