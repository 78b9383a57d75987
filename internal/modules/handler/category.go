package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/serializer"
	"github.com/specbook-io/specbook/internal/modules/service"
	"github.com/specbook-io/specbook/internal/modules/store"
)

type CategoryHandler struct {
	svc service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: s}
}

type CreateCategoryReq struct {
	Name   string `json:"name" binding:"required"`
	Prefix string `json:"prefix" binding:"required,max=3"`
}

// ListCategories godoc
//
//	@Summary		List categories
//	@Description	List a project's categories in creation order
//	@Tags			category
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response{data=[]model.Category}
//	@Router			/project/{project_id}/category [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	cats, err := h.svc.List(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(storeStatus(err), serializer.StoreErr(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: cats})
}

// CreateCategory godoc
//
//	@Summary		Create category
//	@Description	Create a category; the prefix (max 3 chars) is upper-cased and namespaces item product codes
//	@Tags			category
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string						true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.CreateCategoryReq	true	"CreateCategory payload"
//	@Success		201	{object}	serializer.Response{data=model.Category}
//	@Router			/project/{project_id}/category [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := CreateCategoryReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	cat, err := h.svc.Create(c.Request.Context(), projectID, req.Name, req.Prefix)
	if err != nil {
		c.JSON(storeStatus(err), serializer.StoreErr(err))
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: cat})
}

// UpdateCategory godoc
//
//	@Summary		Update category
//	@Description	Apply a partial update. Renaming does not relabel items already tagged with the old name.
//	@Tags			category
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string				true	"Project ID"	Format(uuid)
//	@Param			category_id	path	string				true	"Category ID"	Format(uuid)
//	@Param			payload		body	store.CategoryPatch	true	"UpdateCategory payload"
//	@Success		200	{object}	serializer.Response{data=model.Category}
//	@Router			/project/{project_id}/category/{category_id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	categoryID, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	patch := store.CategoryPatch{}
	if err := c.ShouldBind(&patch); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	cat, err := h.svc.Update(c.Request.Context(), projectID, categoryID, patch)
	if err != nil {
		c.JSON(storeStatus(err), serializer.StoreErr(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: cat})
}

// DeleteCategory godoc
//
//	@Summary		Delete category
//	@Description	Delete a category definition; existing items keep their denormalized category name
//	@Tags			category
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			category_id	path	string	true	"Category ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response
//	@Router			/project/{project_id}/category/{category_id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	categoryID, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), projectID, categoryID); err != nil {
		c.JSON(storeStatus(err), serializer.StoreErr(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
