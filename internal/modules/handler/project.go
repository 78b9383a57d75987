package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/model"
	"github.com/specbook-io/specbook/internal/modules/serializer"
	"github.com/specbook-io/specbook/internal/modules/service"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

type CreateProjectReq struct {
	Name        string  `json:"name" binding:"required"`
	TotalBudget float64 `json:"total_budget" binding:"omitempty,min=0"`
	ClientName  string  `json:"client_name"`
}

// ListProjects godoc
//
//	@Summary		List projects
//	@Description	List all projects in creation order
//	@Tags			project
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=[]model.Project}
//	@Router			/project [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.List(c.Request.Context())})
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Description	Create a project with an optional fixed budget (0 = flexible)
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateProjectReq	true	"CreateProject payload"
//	@Success		201	{object}	serializer.Response{data=model.Project}
//	@Router			/project [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req := CreateProjectReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.Create(c.Request.Context(), req.Name, req.TotalBudget, req.ClientName)
	if err != nil {
		c.JSON(storeStatus(err), serializer.StoreErr(err))
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: p})
}

// GetProject godoc
//
//	@Summary		Get project
//	@Description	Get one project with its schedules and categories
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Router			/project/{project_id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(storeStatus(err), serializer.StoreErr(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// UpdateProject godoc
//
//	@Summary		Update project
//	@Description	Apply a partial update to a project; omitted fields are left alone
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string				true	"Project ID"	Format(uuid)
//	@Param			payload		body	model.ProjectPatch	true	"UpdateProject payload"
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Router			/project/{project_id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	patch := model.ProjectPatch{}
	if err := c.ShouldBind(&patch); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		c.JSON(storeStatus(err), serializer.StoreErr(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Delete a project and everything it owns
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response
//	@Router			/project/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(storeStatus(err), serializer.StoreErr(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

type SetSelectionReq struct {
	ProjectID  uuid.UUID `json:"project_id" binding:"required"`
	ScheduleID uuid.UUID `json:"schedule_id"`
}

// GetSelection godoc
//
//	@Summary		Get selection
//	@Description	Get the active project/schedule selection
//	@Tags			selection
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=store.Selection}
//	@Router			/selection [get]
func (h *ProjectHandler) GetSelection(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.Selection(c.Request.Context())})
}

// SetSelection godoc
//
//	@Summary		Set selection
//	@Description	Point the active selection at a project and optionally one of its schedules
//	@Tags			selection
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.SetSelectionReq	true	"SetSelection payload"
//	@Success		200	{object}	serializer.Response{data=store.Selection}
//	@Router			/selection [put]
func (h *ProjectHandler) SetSelection(c *gin.Context) {
	req := SetSelectionReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.Select(c.Request.Context(), req.ProjectID, req.ScheduleID); err != nil {
		c.JSON(storeStatus(err), serializer.StoreErr(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.Selection(c.Request.Context())})
}
