package bootstrap

import (
	"github.com/samber/do"
	"go.uber.org/zap"

	"github.com/specbook-io/specbook/internal/config"
	"github.com/specbook-io/specbook/internal/infra/logger"
	"github.com/specbook-io/specbook/internal/modules/catalog"
	"github.com/specbook-io/specbook/internal/modules/handler"
	"github.com/specbook-io/specbook/internal/modules/report"
	"github.com/specbook-io/specbook/internal/modules/service"
	"github.com/specbook-io/specbook/internal/modules/store"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// entity store
	do.Provide(inj, func(i *do.Injector) (*store.Store, error) {
		return store.New(), nil
	})

	// product catalog
	do.Provide(inj, func(i *do.Injector) (*catalog.Catalog, error) {
		return catalog.New(catalog.Seed()), nil
	})

	// report pipeline
	do.Provide(inj, func(i *do.Injector) (*report.Generator, error) {
		return report.NewGenerator(), nil
	})
	do.Provide(inj, func(i *do.Injector) (*report.Renderer, error) {
		return report.NewRenderer(
			do.MustInvoke[*report.Generator](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(do.MustInvoke[*store.Store](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ScheduleService, error) {
		return service.NewScheduleService(do.MustInvoke[*store.Store](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CategoryService, error) {
		return service.NewCategoryService(do.MustInvoke[*store.Store](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ItemService, error) {
		return service.NewItemService(
			do.MustInvoke[*store.Store](i),
			do.MustInvoke[*catalog.Catalog](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ExportService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewExportService(
			do.MustInvoke[*store.Store](i),
			do.MustInvoke[*report.Renderer](i),
			cfg.Report.OrganizationName,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ScheduleHandler, error) {
		return handler.NewScheduleHandler(do.MustInvoke[service.ScheduleService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CategoryHandler, error) {
		return handler.NewCategoryHandler(do.MustInvoke[service.CategoryService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ItemHandler, error) {
		return handler.NewItemHandler(do.MustInvoke[service.ItemService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CatalogHandler, error) {
		return handler.NewCatalogHandler(do.MustInvoke[*catalog.Catalog](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ExportHandler, error) {
		return handler.NewExportHandler(do.MustInvoke[service.ExportService](i)), nil
	})

	return inj
}
