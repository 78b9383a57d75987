package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/model"
	"github.com/specbook-io/specbook/internal/modules/serializer"
	"github.com/specbook-io/specbook/internal/modules/service"
)

type ItemHandler struct {
	svc service.ItemService
}

func NewItemHandler(s service.ItemService) *ItemHandler {
	return &ItemHandler{svc: s}
}

type AddItemReq struct {
	CategoryID uuid.UUID `json:"category_id" binding:"required"`
	ProductID  uuid.UUID `json:"product_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"omitempty,min=1"`
}

// AddItem godoc
//
//	@Summary		Add item from product
//	@Description	Materialize a catalog product into a schedule item. Quantity defaults to 1.
//	@Tags			item
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string				true	"Project ID"	Format(uuid)
//	@Param			schedule_id	path	string				true	"Schedule ID"	Format(uuid)
//	@Param			payload		body	handler.AddItemReq	true	"AddItem payload"
//	@Success		201	{object}	serializer.Response{data=model.Item}
//	@Router			/project/{project_id}/schedule/{schedule_id}/item [post]
func (h *ItemHandler) AddItem(c *gin.Context) {
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
	req := AddItemReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	item, err := h.svc.AddFromProduct(c.Request.Context(), service.AddItemInput{
		ProjectID:  projectID,
		ScheduleID: scheduleID,
		CategoryID: req.CategoryID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		c.JSON(storeStatus(err), serializer.StoreErr(err))
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: item})
}

// UpdateItem godoc
//
//	@Summary		Update item
//	@Description	Apply a partial field patch to an item; an empty patch leaves it untouched
//	@Tags			item
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string			true	"Project ID"	Format(uuid)
//	@Param			schedule_id	path	string			true	"Schedule ID"	Format(uuid)
//	@Param			item_id		path	string			true	"Item ID"	Format(uuid)
//	@Param			payload		body	model.ItemPatch	true	"UpdateItem payload"
//	@Success		200	{object}	serializer.Response{data=model.Item}
//	@Router			/project/{project_id}/schedule/{schedule_id}/item/{item_id} [patch]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
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
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	patch := model.ItemPatch{}
	if err := c.ShouldBind(&patch); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	item, err := h.svc.Update(c.Request.Context(), projectID, scheduleID, itemID, patch)
	if err != nil {
		c.JSON(storeStatus(err), serializer.StoreErr(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: item})
}

// DeleteItem godoc
//
//	@Summary		Delete item
//	@Description	Delete a single item from its schedule
//	@Tags			item
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			schedule_id	path	string	true	"Schedule ID"	Format(uuid)
//	@Param			item_id		path	string	true	"Item ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response
//	@Router			/project/{project_id}/schedule/{schedule_id}/item/{item_id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
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
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), projectID, scheduleID, itemID); err != nil {
		c.JSON(storeStatus(err), serializer.StoreErr(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
