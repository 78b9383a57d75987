package main

//	@title			Specbook API
//	@version		1.0
//	@description	FFE project, schedule and specification report API.
//	@schemes		http https
//	@BasePath		/api/v1

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"go.uber.org/zap"

	"github.com/specbook-io/specbook/internal/bootstrap"
	"github.com/specbook-io/specbook/internal/config"
	"github.com/specbook-io/specbook/internal/modules/handler"
	"github.com/specbook-io/specbook/internal/router"
	"github.com/specbook-io/specbook/internal/telemetry"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)

	// Setup OpenTelemetry tracing (using configuration system)
	tp, err := telemetry.SetupTracing(cfg)
	if err != nil {
		log.Sugar().Warnw("failed to setup tracing, continuing without tracing", "err", err)
	} else if tp != nil {
		log.Sugar().Infow("OpenTelemetry tracing enabled", "endpoint", cfg.Telemetry.OtlpEndpoint)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := telemetry.Shutdown(ctx); err != nil {
				log.Sugar().Errorw("failed to shutdown tracer", "err", err)
			}
		}()
	}

	// init gin
	gin.SetMode(cfg.App.Env)

	// build handlers
	projectHandler := do.MustInvoke[*handler.ProjectHandler](inj)
	scheduleHandler := do.MustInvoke[*handler.ScheduleHandler](inj)
	categoryHandler := do.MustInvoke[*handler.CategoryHandler](inj)
	itemHandler := do.MustInvoke[*handler.ItemHandler](inj)
	catalogHandler := do.MustInvoke[*handler.CatalogHandler](inj)
	exportHandler := do.MustInvoke[*handler.ExportHandler](inj)

	engine := router.NewRouter(router.RouterDeps{
		Config:          cfg,
		Log:             log,
		ProjectHandler:  projectHandler,
		ScheduleHandler: scheduleHandler,
		CategoryHandler: categoryHandler,
		ItemHandler:     itemHandler,
		CatalogHandler:  catalogHandler,
		ExportHandler:   exportHandler,
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
