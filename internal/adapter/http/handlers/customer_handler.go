package handlers

import (
	"net/http"

	request "bookshop_billing/internal/adapter/http/dto/request"
	response "bookshop_billing/internal/adapter/http/dto/response"
	"bookshop_billing/internal/domain/entities"
	"bookshop_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CustomerHandler handles HTTP requests for the Customer Directory.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// CreateCustomer godoc
// @Summary      Register a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customer  body      request.CustomerRequest  true  "Customer"
// @Success      201       {object}  response.CustomerResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
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
	c.JSON(http.StatusCreated, response.FromCustomer(created))
}

// ListCustomers godoc
// @Summary      List customers, optionally filtered by a search term
// @Tags         customers
// @Produce      json
// @Param        q    query     string  false  "Matches name, account number, phone or e-mail"
// @Success      200  {array}   response.CustomerResponse
// @Router       /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	ctx := c.Request.Context()
	term := c.Query("q")

	var (
		customers []entities.Customer
		err       error
	)
	if term != "" {
		customers, err = h.usecase.Search(ctx, term)
	} else {
		customers, err = h.usecase.List(ctx)
	}
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

// GetCustomer godoc
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "Customer ID"
// @Success      200  {object}  response.CustomerResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// UpdateCustomer godoc
// @Summary      Replace a customer's details
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id        path      string                   true  "Customer ID"
// @Param        customer  body      request.CustomerRequest  true  "Customer"
// @Success      200       {object}  response.CustomerResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
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
	c.JSON(http.StatusOK, response.FromCustomer(updated))
}

// DeleteCustomer godoc
// @Summary      Delete a customer
// @Tags         customers
// @Param        id   path  string  true  "Customer ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapUseCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
