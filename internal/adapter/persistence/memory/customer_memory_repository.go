package memory

import (
	"context"
	"sync"

	"bookshop_billing/internal/domain/entities"
	"bookshop_billing/internal/usecase/interfaces"
)

// CustomerMemoryRepository keeps customers in insertion order.
type CustomerMemoryRepository struct {
	mu        sync.RWMutex
	customers []entities.Customer
}

var _ interfaces.ICustomerRepository = (*CustomerMemoryRepository)(nil)

func NewCustomerMemoryRepository() *CustomerMemoryRepository {
	return &CustomerMemoryRepository{}
}

func (r *CustomerMemoryRepository) Create(_ context.Context, c entities.Customer) (entities.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(c.ID) >= 0 {
		return entities.Customer{}, ErrDuplicateID
	}
	for _, existing := range r.customers {
		if existing.AccountNumber == c.AccountNumber {
			return entities.Customer{}, interfaces.ErrDuplicateKey
		}
	}
	r.customers = append(r.customers, c)
	return c, nil
}

func (r *CustomerMemoryRepository) GetByID(_ context.Context, id string) (entities.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.customers[i], nil
	}
	return entities.Customer{}, nil
}

func (r *CustomerMemoryRepository) GetByAccountNumber(_ context.Context, accountNumber string) (entities.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if c.AccountNumber == accountNumber {
			return c, nil
		}
	}
	return entities.Customer{}, nil
}

func (r *CustomerMemoryRepository) List(_ context.Context) ([]entities.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Customer, len(r.customers))
	copy(out, r.customers)
	return out, nil
}

func (r *CustomerMemoryRepository) Update(_ context.Context, c entities.Customer) (entities.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(c.ID)
	if i < 0 {
		return entities.Customer{}, nil
	}
	r.customers[i] = c
	return c, nil
}

func (r *CustomerMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.customers = append(r.customers[:i], r.customers[i+1:]...)
	return true, nil
}

func (r *CustomerMemoryRepository) indexOf(id string) int {
	for i, c := range r.customers {
		if c.ID == id {
			return i
		}
	}
	return -1
}
