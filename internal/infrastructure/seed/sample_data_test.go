package seed

import (
	"context"
	"testing"

	"bookshop_billing/internal/adapter/persistence/memory"
	"bookshop_billing/internal/usecase"
)

func TestLoad_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	customers := usecase.NewCustomerUseCase(memory.NewCustomerMemoryRepository(), nil)
	items := usecase.NewItemUseCase(memory.NewItemMemoryRepository(), nil)

	for i := 0; i < 2; i++ {
		if err := Load(ctx, customers, items, nil); err != nil {
			t.Fatalf("load #%d: %v", i+1, err)
		}
	}

	cs, _ := customers.List(ctx)
	is, _ := items.List(ctx)
	if len(cs) != 3 || len(is) != 5 {
		t.Fatalf("expected 3 customers and 5 items, got %d and %d", len(cs), len(is))
	}

	low, _ := items.LowStock(ctx)
	if len(low) != 1 || low[0].Code != "BOOK003" {
		t.Fatalf("expected BOOK003 as the only low-stock item, got %+v", low)
	}
}
