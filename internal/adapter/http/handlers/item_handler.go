package handlers

import (
	"net/http"

	request "bookshop_billing/internal/adapter/http/dto/request"
	response "bookshop_billing/internal/adapter/http/dto/response"
	"bookshop_billing/internal/domain/entities"
	"bookshop_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ItemHandler handles HTTP requests for the Item Catalog.
type ItemHandler struct {
	usecase usecase.IItemUseCase
}

func NewItemHandler(uc usecase.IItemUseCase) *ItemHandler {
	return &ItemHandler{usecase: uc}
}

// CreateItem godoc
// @Summary      Add an item to the catalog
// @Description  min_stock_threshold defaults to 5 when omitted.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        item  body      request.ItemRequest  true  "Item"
// @Success      201   {object}  response.ItemResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestBody.HTTPStatus, errInvalidRequestBody.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromItem(created))
}

// ListItems godoc
// @Summary      List catalog items
// @Tags         items
// @Produce      json
// @Param        q         query     string  false  "Matches name, code or description"
// @Param        category  query     string  false  "textbook, reference, stationery or digital"
// @Success      200       {array}   response.ItemResponse
// @Router       /items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	ctx := c.Request.Context()
	term := c.Query("q")
	category := entities.ItemCategory(c.Query("category"))

	var (
		items []entities.Item
		err   error
	)
	if term != "" || category != "" {
		items, err = h.usecase.Search(ctx, term, category)
	} else {
		items, err = h.usecase.List(ctx)
	}
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromItems(items))
}

// ListLowStock godoc
// @Summary      Items at or below their minimum stock threshold
// @Tags         items
// @Produce      json
// @Success      200  {array}  response.ItemResponse
// @Router       /items/low-stock [get]
func (h *ItemHandler) ListLowStock(c *gin.Context) {
	items, err := h.usecase.LowStock(c.Request.Context())
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromItems(items))
}

// ListInStock godoc
// @Summary      Items with stock available to sell
// @Tags         items
// @Produce      json
// @Success      200  {array}  response.ItemResponse
// @Router       /items/in-stock [get]
func (h *ItemHandler) ListInStock(c *gin.Context) {
	items, err := h.usecase.InStock(c.Request.Context())
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromItems(items))
}

// GetItem godoc
// @Summary      Get an item
// @Tags         items
// @Produce      json
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  response.ItemResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromItem(item))
}

// UpdateItem godoc
// @Summary      Replace an item's details
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Item ID"
// @Param        item  body      request.ItemRequest  true  "Item"
// @Success      200   {object}  response.ItemResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /items/{id} [put]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestBody.HTTPStatus, errInvalidRequestBody.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromItem(updated))
}

// DeleteItem godoc
// @Summary      Delete an item
// @Tags         items
// @Param        id   path  string  true  "Item ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// AdjustStock godoc
// @Summary      Add or remove stock
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id     path      string                      true  "Item ID"
// @Param        delta  body      request.StockAdjustRequest  true  "Stock delta"
// @Success      200    {object}  response.ItemResponse
// @Failure      404    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Router       /items/{id}/stock [patch]
func (h *ItemHandler) AdjustStock(c *gin.Context) {
	var payload request.StockAdjustRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestBody.HTTPStatus, errInvalidRequestBody.ToHTTPError())
		return
	}

	item, err := h.usecase.AdjustStock(c.Request.Context(), c.Param("id"), *payload.Delta)
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromItem(item))
}
