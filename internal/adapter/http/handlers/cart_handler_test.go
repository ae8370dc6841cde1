package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookshop_billing/internal/adapter/http/handlers/mocks"
	"bookshop_billing/internal/domain/entities"
	"bookshop_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var handlerTaxRate = decimal.RequireFromString("0.10")

func newCartRouter(h *CartHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/cart", h.GetCart)
	r.DELETE("/v1/cart", h.ClearCart)
	r.POST("/v1/cart/lines", h.AddLine)
	r.DELETE("/v1/cart/lines/:index", h.RemoveLine)
	r.POST("/v1/cart/commit", h.Commit)
	return r
}

func cartLines() []entities.CartLine {
	return []entities.CartLine{
		{ItemID: "i1", ItemCode: "TXT001", Name: "Mathematics Grade 10", UnitPrice: decimal.RequireFromString("12.50"), Quantity: 2},
	}
}

func TestCartHandler_GetCart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICartUseCase(ctrl)
	r := newCartRouter(NewCartHandler(uc))

	uc.EXPECT().Lines().Return(cartLines())
	uc.EXPECT().TaxRate().Return(handlerTaxRate)

	req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["subtotal"] != 25.0 || body["tax"] != 2.5 || body["total"] != 27.5 {
		t.Fatalf("unexpected totals: %s", w.Body.String())
	}
}

func TestCartHandler_AddLine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("insufficient stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		r := newCartRouter(NewCartHandler(uc))

		uc.EXPECT().AddLine(gomock.Any(), "i1", 3).
			Return(entities.CartLine{}, &usecase.InsufficientStockError{ItemID: "i1", Requested: 3, Available: 4, AlreadyReserved: 2})

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/lines", bytes.NewBufferString(`{"item_id":"i1","quantity":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "INSUFFICIENT_STOCK" || body.Details["already_reserved"] != 2.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		r := newCartRouter(NewCartHandler(uc))

		uc.EXPECT().AddLine(gomock.Any(), "i1", 0).Return(entities.CartLine{}, usecase.ErrInvalidQuantity)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/lines", bytes.NewBufferString(`{"item_id":"i1","quantity":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		r := newCartRouter(NewCartHandler(uc))

		gomock.InOrder(
			uc.EXPECT().AddLine(gomock.Any(), "i1", 2).Return(cartLines()[0], nil),
			uc.EXPECT().Lines().Return(cartLines()),
		)
		uc.EXPECT().TaxRate().Return(handlerTaxRate)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/lines", bytes.NewBufferString(`{"item_id":"i1","quantity":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestCartHandler_RemoveLine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non numeric index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		r := newCartRouter(NewCartHandler(uc))

		req := httptest.NewRequest(http.MethodDelete, "/v1/cart/lines/first", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("out of range index is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		r := newCartRouter(NewCartHandler(uc))

		uc.EXPECT().RemoveLine(7)
		uc.EXPECT().Lines().Return(nil)
		uc.EXPECT().TaxRate().Return(handlerTaxRate)

		req := httptest.NewRequest(http.MethodDelete, "/v1/cart/lines/7", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCartHandler_ClearCart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICartUseCase(ctrl)
	r := newCartRouter(NewCartHandler(uc))

	uc.EXPECT().Clear()
	uc.EXPECT().Lines().Return(nil)
	uc.EXPECT().TaxRate().Return(handlerTaxRate)

	req := httptest.NewRequest(http.MethodDelete, "/v1/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCartHandler_Commit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		r := newCartRouter(NewCartHandler(uc))

		uc.EXPECT().Commit(gomock.Any(), "c1", "").Return(entities.Bill{}, usecase.ErrCartEmpty)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/commit", bytes.NewBufferString(`{"customer_id":"c1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		r := newCartRouter(NewCartHandler(uc))

		uc.EXPECT().Commit(gomock.Any(), "ghost", "2024-05-03").
			Return(entities.Bill{}, &usecase.NotFoundError{Entity: "customer", ID: "ghost"})

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/commit", bytes.NewBufferString(`{"customer_id":"ghost","date":"2024-05-03"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		r := newCartRouter(NewCartHandler(uc))

		lines := cartLines()
		totals := entities.ComputeTotals(lines, handlerTaxRate)
		uc.EXPECT().Commit(gomock.Any(), "c1", "2024-05-03").Return(entities.Bill{
			ID:         1,
			CustomerID: "c1",
			Date:       "2024-05-03",
			Lines:      lines,
			Subtotal:   totals.Subtotal,
			TaxRate:    handlerTaxRate,
			Tax:        totals.Tax,
			Total:      totals.Total,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/commit", bytes.NewBufferString(`{"customer_id":"c1","date":"2024-05-03"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != 1.0 || body["total"] != 27.5 || body["item_count"] != 2.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
