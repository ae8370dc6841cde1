package handlers

import (
	"net/http"
	"strconv"

	request "bookshop_billing/internal/adapter/http/dto/request"
	response "bookshop_billing/internal/adapter/http/dto/response"
	"bookshop_billing/internal/domain/entities"
	"bookshop_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CartHandler exposes the single active cart.
type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// GetCart godoc
// @Summary      Current cart lines and totals
// @Tags         cart
// @Produce      json
// @Success      200  {object}  response.CartResponse
// @Router       /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot())
}

// ClearCart godoc
// @Summary      Discard every cart line
// @Tags         cart
// @Produce      json
// @Success      200  {object}  response.CartResponse
// @Router       /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.usecase.Clear()
	c.JSON(http.StatusOK, h.snapshot())
}

// AddLine godoc
// @Summary      Add an item to the cart
// @Description  Adding an item already in the cart increases its line.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        line  body      request.CartLineRequest  true  "Item and quantity"
// @Success      201   {object}  response.CartResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /cart/lines [post]
func (h *CartHandler) AddLine(c *gin.Context) {
	var payload request.CartLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestBody.HTTPStatus, errInvalidRequestBody.ToHTTPError())
		return
	}

	if _, err := h.usecase.AddLine(c.Request.Context(), payload.ItemID, payload.Quantity); err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, h.snapshot())
}

// RemoveLine godoc
// @Summary      Remove the cart line at index
// @Description  An index outside the cart leaves it unchanged.
// @Tags         cart
// @Produce      json
// @Param        index  path      int  true  "Zero-based line index"
// @Success      200    {object}  response.CartResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /cart/lines/{index} [delete]
func (h *CartHandler) RemoveLine(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidPathID.HTTPStatus, errInvalidPathID.ToHTTPError())
		return
	}
	h.usecase.RemoveLine(index)
	c.JSON(http.StatusOK, h.snapshot())
}

// Commit godoc
// @Summary      Bill the cart to a customer
// @Description  Records the bill, decrements stock and empties the cart.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        commit  body      request.CommitRequest  true  "Customer and optional date"
// @Success      201     {object}  response.BillResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Router       /cart/commit [post]
func (h *CartHandler) Commit(c *gin.Context) {
	var payload request.CommitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestBody.HTTPStatus, errInvalidRequestBody.ToHTTPError())
		return
	}

	bill, err := h.usecase.Commit(c.Request.Context(), payload.CustomerID, payload.Date)
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromBill(bill))
}

// snapshot renders the cart from a single copy of its lines, so the totals
// always match the lines shown.
func (h *CartHandler) snapshot() response.CartResponse {
	lines := h.usecase.Lines()
	rate := h.usecase.TaxRate()
	return response.FromCart(lines, entities.ComputeTotals(lines, rate), rate)
}
