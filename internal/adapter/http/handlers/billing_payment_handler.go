package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "bookshop_billing/internal/adapter/http/dto/response"
	"bookshop_billing/internal/usecase"
	"bookshop_billing/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BillingPaymentHandler handles HTTP requests for bill payments.
type BillingPaymentHandler struct {
	usecase  usecase.IBillingPaymentUseCase
	mockMode bool
	logger   *zap.Logger
}

// NewBillingPaymentHandler builds the handler. In mockMode a malformed body
// falls back to an empty provider payload instead of being rejected.
func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, mockMode bool, logger *zap.Logger) *BillingPaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BillingPaymentHandler{usecase: uc, mockMode: mockMode, logger: logger.Named("payment.handler")}
}

// CreatePayment godoc
// @Summary      Pay a bill through the payment provider
// @Description  The body is the provider payload, optionally wrapped as {"provider_payload": {...}}. The charged amount is always the bill total.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id       path      int                                  true   "Bill ID"
// @Param        payment  body      request.BillingPaymentCreateRequest  false  "Provider payload"
// @Success      200      {object}  response.BillingPaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /bills/{id}/payments [post]
func (h *BillingPaymentHandler) CreatePayment(c *gin.Context) {
	billID, ok := billIDParam(c)
	if !ok {
		c.JSON(errInvalidPathID.HTTPStatus, errInvalidPathID.ToHTTPError())
		return
	}
	log := h.logger.With(zap.Int64("bill_id", billID))
	log.Info("create start")

	payload, err := readProviderPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Info("invalid payload", zap.Error(err))
			c.JSON(errInvalidRequestBody.HTTPStatus, errInvalidRequestBody.ToHTTPError())
			return
		}
		log.Info("payload invalid in mock mode; using empty payload", zap.Error(err))
		payload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), billID, payload)
	if err != nil {
		log.Info("create failed", zap.Error(err))
		appErr := mapBillingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("create success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// ListPayments godoc
// @Summary      Payments recorded for a bill
// @Tags         payments
// @Produce      json
// @Param        id   path      int  true  "Bill ID"
// @Success      200  {array}   response.BillingPaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /bills/{id}/payments [get]
func (h *BillingPaymentHandler) ListPayments(c *gin.Context) {
	billID, ok := billIDParam(c)
	if !ok {
		c.JSON(errInvalidPathID.HTTPStatus, errInvalidPathID.ToHTTPError())
		return
	}

	payments, err := h.usecase.ListByBillID(c.Request.Context(), billID)
	if err != nil {
		h.logger.Info("list failed", zap.Int64("bill_id", billID), zap.Error(err))
		appErr := mapBillingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayments(payments))
}

// GetPayment godoc
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Param        payment_id  path      string  true  "Payment ID"
// @Success      200         {object}  response.BillingPaymentResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /payments/{payment_id} [get]
func (h *BillingPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapBillingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(p))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentBillID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrBillAlreadyPaid):
		return pkg.NewDomainErrorSimple("BILL_ALREADY_PAID", "Bill already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return mapUseCaseError(err)
	}
}
