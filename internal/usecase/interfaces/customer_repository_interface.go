package interfaces

import (
	"context"

	"bookshop_billing/internal/domain/entities"
)

// ICustomerRepository is the Customer Directory.
//
// Lookups return a zero-value Customer (empty ID) and a nil error when nothing
// matches; callers decide whether absence is an error.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByAccountNumber(ctx context.Context, accountNumber string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) (bool, error)
}
