package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/specbook-io/specbook/internal/modules/catalog"
	"github.com/specbook-io/specbook/internal/modules/serializer"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

type ListProductsReq struct {
	Query    string  `form:"query" json:"query"`
	Category string  `form:"category" json:"category"`
	Brand    string  `form:"brand" json:"brand"`
	MinPrice float64 `form:"min_price" json:"min_price" binding:"omitempty,min=0"`
	MaxPrice float64 `form:"max_price" json:"max_price" binding:"omitempty,min=0"`
}

// ListProducts godoc
//
//	@Summary		List products
//	@Description	List catalog products, optionally filtered by substring query, category, brand or price range
//	@Tags			catalog
//	@Produce		json
//	@Param			query		query	string	false	"Substring match over name, category and brand"
//	@Param			category	query	string	false	"Exact category"
//	@Param			brand		query	string	false	"Exact brand"
//	@Param			min_price	query	number	false	"Minimum price, inclusive"
//	@Param			max_price	query	number	false	"Maximum price, inclusive (0 = unbounded)"
//	@Success		200	{object}	serializer.Response{data=[]model.Product}
//	@Router			/catalog/product [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	req := ListProductsReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	products := h.catalog.List(catalog.Filter{
		Query:    req.Query,
		Category: req.Category,
		Brand:    req.Brand,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	})
	c.JSON(http.StatusOK, serializer.Response{Data: products})
}

// GetProduct godoc
//
//	@Summary		Get product
//	@Description	Get one catalog product by id
//	@Tags			catalog
//	@Produce		json
//	@Param			product_id	path	string	true	"Product ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response{data=model.Product}
//	@Router			/catalog/product/{product_id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	product, ok := h.catalog.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(errors.New("product "+id.String()+" not found")))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: product})
}
