package memory

import (
	"context"
	"sync"
	"time"

	"bookshop_billing/internal/domain/entities"
	"bookshop_billing/internal/usecase/interfaces"
)

// ItemMemoryRepository keeps catalog items in insertion order.
type ItemMemoryRepository struct {
	mu    sync.RWMutex
	items []entities.Item
}

var _ interfaces.IItemRepository = (*ItemMemoryRepository)(nil)

func NewItemMemoryRepository() *ItemMemoryRepository {
	return &ItemMemoryRepository{}
}

func (r *ItemMemoryRepository) Create(_ context.Context, it entities.Item) (entities.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(it.ID) >= 0 {
		return entities.Item{}, ErrDuplicateID
	}
	for _, existing := range r.items {
		if existing.Code == it.Code {
			return entities.Item{}, interfaces.ErrDuplicateKey
		}
	}
	r.items = append(r.items, it)
	return it, nil
}

func (r *ItemMemoryRepository) GetByID(_ context.Context, id string) (entities.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.items[i], nil
	}
	return entities.Item{}, nil
}

func (r *ItemMemoryRepository) GetByCode(_ context.Context, code string) (entities.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.Code == code {
			return it, nil
		}
	}
	return entities.Item{}, nil
}

func (r *ItemMemoryRepository) List(_ context.Context) ([]entities.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *ItemMemoryRepository) Update(_ context.Context, it entities.Item) (entities.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(it.ID)
	if i < 0 {
		return entities.Item{}, nil
	}
	r.items[i] = it
	return it, nil
}

func (r *ItemMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return true, nil
}

func (r *ItemMemoryRepository) AdjustStock(_ context.Context, id string, delta int) (entities.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return entities.Item{}, nil
	}
	if r.items[i].StockQuantity+delta < 0 {
		return entities.Item{}, interfaces.ErrNegativeStock
	}
	r.items[i].StockQuantity += delta
	r.items[i].UpdatedAt = time.Now().UTC()
	return r.items[i], nil
}

func (r *ItemMemoryRepository) indexOf(id string) int {
	for i, it := range r.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
