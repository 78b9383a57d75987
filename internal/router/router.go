package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/specbook-io/specbook/docs"
	"github.com/specbook-io/specbook/internal/config"
	"github.com/specbook-io/specbook/internal/middleware"
	"github.com/specbook-io/specbook/internal/modules/handler"
	"github.com/specbook-io/specbook/internal/modules/serializer"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config          *config.Config
	Log             *zap.Logger
	ProjectHandler  *handler.ProjectHandler
	ScheduleHandler *handler.ScheduleHandler
	CategoryHandler *handler.CategoryHandler
	ItemHandler     *handler.ItemHandler
	CatalogHandler  *handler.CatalogHandler
	ExportHandler   *handler.ExportHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// ping endpoint
		v1.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "pong"}) })

		selection := v1.Group("/selection")
		{
			selection.GET("", d.ProjectHandler.GetSelection)
			selection.PUT("", d.ProjectHandler.SetSelection)
		}

		project := v1.Group("/project")
		{
			project.GET("", d.ProjectHandler.ListProjects)
			project.POST("", d.ProjectHandler.CreateProject)
			project.GET("/:project_id", d.ProjectHandler.GetProject)
			project.PUT("/:project_id", d.ProjectHandler.UpdateProject)
			project.DELETE("/:project_id", d.ProjectHandler.DeleteProject)

			category := project.Group("/:project_id/category")
			{
				category.GET("", d.CategoryHandler.ListCategories)
				category.POST("", d.CategoryHandler.CreateCategory)
				category.PUT("/:category_id", d.CategoryHandler.UpdateCategory)
				category.DELETE("/:category_id", d.CategoryHandler.DeleteCategory)
			}

			schedule := project.Group("/:project_id/schedule")
			{
				schedule.POST("", d.ScheduleHandler.CreateSchedule)
				schedule.GET("/:schedule_id", d.ScheduleHandler.GetSchedule)
				schedule.PUT("/:schedule_id", d.ScheduleHandler.UpdateSchedule)
				schedule.DELETE("/:schedule_id", d.ScheduleHandler.DeleteSchedule)

				schedule.POST("/:schedule_id/export", d.ExportHandler.ExportSchedule)

				item := schedule.Group("/:schedule_id/item")
				{
					item.POST("", d.ItemHandler.AddItem)
					item.PATCH("/:item_id", d.ItemHandler.UpdateItem)
					item.DELETE("/:item_id", d.ItemHandler.DeleteItem)
				}
			}
		}

		catalog := v1.Group("/catalog")
		{
			catalog.GET("/product", d.CatalogHandler.ListProducts)
			catalog.GET("/product/:product_id", d.CatalogHandler.GetProduct)
		}
	}
	return r
}
