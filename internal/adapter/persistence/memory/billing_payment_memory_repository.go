package memory

import (
	"context"
	"sync"

	"bookshop_billing/internal/domain/entities"
	"bookshop_billing/internal/usecase/interfaces"
)

type BillingPaymentMemoryRepository struct {
	mu       sync.RWMutex
	payments []entities.BillingPayment
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentMemoryRepository)(nil)

func NewBillingPaymentMemoryRepository() *BillingPaymentMemoryRepository {
	return &BillingPaymentMemoryRepository{}
}

func (r *BillingPaymentMemoryRepository) Create(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.payments {
		if existing.ID == p.ID {
			return entities.BillingPayment{}, ErrDuplicateID
		}
	}
	r.payments = append(r.payments, p)
	return p, nil
}

func (r *BillingPaymentMemoryRepository) GetByID(_ context.Context, id string) (entities.BillingPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.BillingPayment{}, nil
}

func (r *BillingPaymentMemoryRepository) ListByBillID(_ context.Context, billID int64) ([]entities.BillingPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.BillingPayment, 0)
	for _, p := range r.payments {
		if p.BillID == billID {
			out = append(out, p)
		}
	}
	return out, nil
}
