package interfaces

import (
	"context"
	"errors"

	"bookshop_billing/internal/domain/entities"
)

// ErrNegativeStock is returned by AdjustStock when the resulting stock would
// drop below zero. The stored item is left unchanged.
var ErrNegativeStock = errors.New("stock adjustment would make stock negative")

// IItemRepository is the Item Catalog.
//
// Lookups return a zero-value Item (empty ID) and a nil error when nothing
// matches. AdjustStock applies delta atomically and returns the updated item.
type IItemRepository interface {
	Create(ctx context.Context, it entities.Item) (entities.Item, error)
	GetByID(ctx context.Context, id string) (entities.Item, error)
	GetByCode(ctx context.Context, code string) (entities.Item, error)
	List(ctx context.Context) ([]entities.Item, error)
	Update(ctx context.Context, it entities.Item) (entities.Item, error)
	Delete(ctx context.Context, id string) (bool, error)
	AdjustStock(ctx context.Context, id string, delta int) (entities.Item, error)
}
