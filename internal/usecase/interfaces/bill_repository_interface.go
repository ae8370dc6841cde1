package interfaces

import (
	"context"

	"bookshop_billing/internal/domain/entities"
)

// IBillRepository is the append-only Bill Ledger.
//
// List and ListByCustomerID return bills in insertion order (ascending id).
// GetByID returns a zero-value Bill (ID 0) when nothing matches.
type IBillRepository interface {
	Append(ctx context.Context, b entities.Bill) (entities.Bill, error)
	GetByID(ctx context.Context, id int64) (entities.Bill, error)
	List(ctx context.Context) ([]entities.Bill, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Bill, error)
}

// IBillSequence hands out bill ids. Values are strictly increasing and never
// handed out twice, even if the caller later fails to use them.
type IBillSequence interface {
	Next(ctx context.Context) (int64, error)
}
