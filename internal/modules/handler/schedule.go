package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/serializer"
	"github.com/specbook-io/specbook/internal/modules/service"
	"github.com/specbook-io/specbook/internal/modules/store"
)

type ScheduleHandler struct {
	svc service.ScheduleService
}

func NewScheduleHandler(s service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: s}
}

type CreateScheduleReq struct {
	Name   string  `json:"name" binding:"required"`
	Budget float64 `json:"budget" binding:"omitempty,min=0"`
}

// CreateSchedule godoc
//
//	@Summary		Create schedule
//	@Description	Create a schedule under a project. When the project carries a fixed budget, the sum of schedule budgets must stay within it.
//	@Tags			schedule
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string						true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.CreateScheduleReq	true	"CreateSchedule payload"
//	@Success		201	{object}	serializer.Response{data=model.Schedule}
//	@Router			/project/{project_id}/schedule [post]
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := CreateScheduleReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	sc, err := h.svc.Create(c.Request.Context(), projectID, req.Name, req.Budget)
	if err != nil {
		c.JSON(storeStatus(err), serializer.StoreErr(err))
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: sc})
}

// GetSchedule godoc
//
//	@Summary		Get schedule detail
//	@Description	Get a schedule with its category-grouped items, per-category totals and budget summary. Derived figures are recomputed on every read.
//	@Tags			schedule
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			schedule_id	path	string	true	"Schedule ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response{data=service.ScheduleDetail}
//	@Router			/project/{project_id}/schedule/{schedule_id} [get]
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	scheduleID, err := uuid.Parse(c.Param("schedule_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	detail, err := h.svc.Detail(c.Request.Context(), projectID, scheduleID)
	if err != nil {
		c.JSON(storeStatus(err), serializer.StoreErr(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: detail})
}

// UpdateSchedule godoc
//
//	@Summary		Update schedule
//	@Description	Apply a partial update to a schedule
//	@Tags			schedule
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string				true	"Project ID"	Format(uuid)
//	@Param			schedule_id	path	string				true	"Schedule ID"	Format(uuid)
//	@Param			payload		body	store.SchedulePatch	true	"UpdateSchedule payload"
//	@Success		200	{object}	serializer.Response{data=model.Schedule}
//	@Router			/project/{project_id}/schedule/{schedule_id} [put]
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	scheduleID, err := uuid.Parse(c.Param("schedule_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	patch := store.SchedulePatch{}
	if err := c.ShouldBind(&patch); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	sc, err := h.svc.Update(c.Request.Context(), projectID, scheduleID, patch)
	if err != nil {
		c.JSON(storeStatus(err), serializer.StoreErr(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: sc})
}

// DeleteSchedule godoc
//
//	@Summary		Delete schedule
//	@Description	Delete a schedule and its items. Deleting the active schedule clears the schedule selection.
//	@Tags			schedule
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			schedule_id	path	string	true	"Schedule ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response
//	@Router			/project/{project_id}/schedule/{schedule_id} [delete]
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	scheduleID, err := uuid.Parse(c.Param("schedule_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), projectID, scheduleID); err != nil {
		c.JSON(storeStatus(err), serializer.StoreErr(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
