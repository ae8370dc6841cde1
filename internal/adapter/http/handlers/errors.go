package handlers

import (
	"errors"
	"net/http"
	"strings"

	"bookshop_billing/internal/usecase"
	"bookshop_billing/pkg"
)

var (
	errInvalidRequestBody = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
	errInvalidPathID      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid id in path", http.StatusBadRequest)
)

// mapUseCaseError translates the typed use case errors into the HTTP error
// body. Anything unrecognised is an internal error.
func mapUseCaseError(err error) *pkg.AppError {
	var (
		validation *usecase.ValidationError
		notFound   *usecase.NotFoundError
		stock      *usecase.InsufficientStockError
		conflict   *usecase.ConflictError
	)
	switch {
	case errors.As(err, &validation):
		appErr := pkg.NewDomainError("INVALID_REQUEST", validation.Error(), err, http.StatusBadRequest)
		if validation.Field != "" {
			appErr = appErr.WithDetails(map[string]any{"field": validation.Field})
		}
		return appErr
	case errors.As(err, &notFound):
		return pkg.NewDomainError(strings.ToUpper(notFound.Entity)+"_NOT_FOUND", notFound.Error(), err, http.StatusNotFound)
	case errors.As(err, &stock):
		return pkg.NewDomainError("INSUFFICIENT_STOCK", stock.Error(), err, http.StatusConflict).WithDetails(map[string]any{
			"item_id":          stock.ItemID,
			"requested":        stock.Requested,
			"available":        stock.Available,
			"already_reserved": stock.AlreadyReserved,
		})
	case errors.As(err, &conflict):
		return pkg.NewDomainError(strings.ToUpper(conflict.Entity)+"_ALREADY_EXISTS", conflict.Error(), err, http.StatusConflict).WithDetails(map[string]any{
			"field": conflict.Field,
			"value": conflict.Value,
		})
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
