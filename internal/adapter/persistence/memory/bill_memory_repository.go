package memory

import (
	"context"
	"sync"

	"bookshop_billing/internal/domain/entities"
	"bookshop_billing/internal/usecase/interfaces"
)

// BillMemoryRepository is an append-only ledger. Bills are cloned on the way
// in and out so callers can never alter a stored bill.
type BillMemoryRepository struct {
	mu    sync.RWMutex
	bills []entities.Bill
	byID  map[int64]int
}

var _ interfaces.IBillRepository = (*BillMemoryRepository)(nil)

func NewBillMemoryRepository() *BillMemoryRepository {
	return &BillMemoryRepository{byID: make(map[int64]int)}
}

func (r *BillMemoryRepository) Append(_ context.Context, b entities.Bill) (entities.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[b.ID]; exists {
		return entities.Bill{}, ErrDuplicateID
	}
	r.byID[b.ID] = len(r.bills)
	r.bills = append(r.bills, b.Clone())
	return b.Clone(), nil
}

func (r *BillMemoryRepository) GetByID(_ context.Context, id int64) (entities.Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return entities.Bill{}, nil
	}
	return r.bills[i].Clone(), nil
}

func (r *BillMemoryRepository) List(_ context.Context) ([]entities.Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Bill, len(r.bills))
	for i, b := range r.bills {
		out[i] = b.Clone()
	}
	return out, nil
}

func (r *BillMemoryRepository) ListByCustomerID(_ context.Context, customerID string) ([]entities.Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Bill, 0)
	for _, b := range r.bills {
		if b.CustomerID == customerID {
			out = append(out, b.Clone())
		}
	}
	return out, nil
}
