package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"bookshop_billing/internal/usecase"
)

func TestMapUseCaseError(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		appErr := mapUseCaseError(usecase.ErrInvalidQuantity)
		if appErr.HTTPStatus != http.StatusBadRequest || appErr.Code != "INVALID_REQUEST" {
			t.Fatalf("unexpected error: %+v", appErr)
		}
		if appErr.Details["field"] != "quantity" {
			t.Fatalf("expected field detail, got %+v", appErr.Details)
		}
	})

	t.Run("wrapped not found", func(t *testing.T) {
		err := fmt.Errorf("load: %w", &usecase.NotFoundError{Entity: "customer", ID: "c9"})
		appErr := mapUseCaseError(err)
		if appErr.HTTPStatus != http.StatusNotFound || appErr.Code != "CUSTOMER_NOT_FOUND" {
			t.Fatalf("unexpected error: %+v", appErr)
		}
	})

	t.Run("insufficient stock carries figures", func(t *testing.T) {
		appErr := mapUseCaseError(&usecase.InsufficientStockError{ItemID: "i1", Requested: 3, Available: 4, AlreadyReserved: 2})
		if appErr.HTTPStatus != http.StatusConflict || appErr.Code != "INSUFFICIENT_STOCK" {
			t.Fatalf("unexpected error: %+v", appErr)
		}
		body := appErr.ToHTTPError()
		if body.Details["requested"] != 3 || body.Details["available"] != 4 || body.Details["already_reserved"] != 2 {
			t.Fatalf("unexpected details: %+v", body.Details)
		}
	})

	t.Run("conflict", func(t *testing.T) {
		appErr := mapUseCaseError(&usecase.ConflictError{Entity: "item", Field: "code", Value: "TXT001"})
		if appErr.HTTPStatus != http.StatusConflict || appErr.Code != "ITEM_ALREADY_EXISTS" {
			t.Fatalf("unexpected error: %+v", appErr)
		}
	})

	t.Run("internal", func(t *testing.T) {
		appErr := mapUseCaseError(errors.New("disk on fire"))
		if appErr.HTTPStatus != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", appErr.HTTPStatus)
		}
		if appErr.Message == "disk on fire" {
			t.Fatal("internal error text must not reach the client")
		}
	})
}
