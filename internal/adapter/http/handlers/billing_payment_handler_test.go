package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookshop_billing/internal/adapter/http/handlers/mocks"
	"bookshop_billing/internal/domain/entities"
	"bookshop_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newPaymentRouter(h *BillingPaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/bills/:id/payments", h.CreatePayment)
	r.GET("/v1/bills/:id/payments", h.ListPayments)
	r.GET("/v1/payments/:payment_id", h.GetPayment)
	return r
}

func TestBillingPaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		r := newPaymentRouter(NewBillingPaymentHandler(uc, false, nil))

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/7/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		r := newPaymentRouter(NewBillingPaymentHandler(uc, true, nil))

		uc.EXPECT().CreateAndApprove(gomock.Any(), int64(7), json.RawMessage("{}")).
			Return(entities.BillingPayment{ID: "mock-1", BillID: 7, Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/7/payments", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non numeric bill id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		r := newPaymentRouter(NewBillingPaymentHandler(uc, false, nil))

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/abc/payments", bytes.NewBufferString("{}"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bill already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		r := newPaymentRouter(NewBillingPaymentHandler(uc, false, nil))

		uc.EXPECT().CreateAndApprove(gomock.Any(), int64(7), gomock.Any()).Return(entities.BillingPayment{}, usecase.ErrBillAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/7/payments", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown bill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		r := newPaymentRouter(NewBillingPaymentHandler(uc, false, nil))

		uc.EXPECT().CreateAndApprove(gomock.Any(), int64(99), gomock.Any()).
			Return(entities.BillingPayment{}, &usecase.NotFoundError{Entity: "bill", ID: "99"})

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/99/payments", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("BILL_NOT_FOUND")) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success unwraps envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		r := newPaymentRouter(NewBillingPaymentHandler(uc, false, nil))

		now := time.Now().UTC()
		uc.EXPECT().CreateAndApprove(gomock.Any(), int64(7), json.RawMessage(`{"payment_method_id":"pix"}`)).
			Return(entities.BillingPayment{ID: "pay-1", BillID: 7, Amount: decimal.RequireFromString("57.18"), Date: now, Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/7/payments", bytes.NewBufferString(`{"provider_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["amount"] != 57.18 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBillingPaymentHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		r := newPaymentRouter(NewBillingPaymentHandler(uc, false, nil))

		uc.EXPECT().ListByBillID(gomock.Any(), int64(7)).Return(nil, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/v1/bills/7/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		r := newPaymentRouter(NewBillingPaymentHandler(uc, false, nil))

		uc.EXPECT().ListByBillID(gomock.Any(), int64(7)).Return([]entities.BillingPayment{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bills/7/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 with [], got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestBillingPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		r := newPaymentRouter(NewBillingPaymentHandler(uc, false, nil))

		uc.EXPECT().GetByID(gomock.Any(), "pay-9").Return(entities.BillingPayment{}, usecase.ErrBillingPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pay-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		r := newPaymentRouter(NewBillingPaymentHandler(uc, false, nil))

		uc.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.BillingPayment{ID: "pay-1", BillID: 7, Status: entities.PaymentStatusPending}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pay-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestReadProviderPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readProviderPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readProviderPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readProviderPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readProviderPayload(makeCtx(`{"provider_payload":null}`)); err == nil {
		t.Fatalf("expected provider_payload empty error")
	}

	payload, err = readProviderPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected raw body passthrough, got payload=%s err=%v", string(payload), err)
	}
}

func TestMapBillingPaymentError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{usecase.ErrInvalidProviderPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{usecase.ErrBillAlreadyPaid, http.StatusConflict},
		{usecase.ErrBillingPaymentNotFound, http.StatusNotFound},
		{usecase.ErrInvalidID, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapBillingPaymentError(tc.err).HTTPStatus; got != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, got)
		}
	}
}
