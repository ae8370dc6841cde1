package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"bookshop_billing/internal/domain/entities"
	"bookshop_billing/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func TestItemMemoryRepository_AdjustStock(t *testing.T) {
	ctx := context.Background()
	repo := NewItemMemoryRepository()
	if _, err := repo.Create(ctx, entities.Item{ID: "i-1", Code: "BOOK001", StockQuantity: 5}); err != nil {
		t.Fatalf("create: %v", err)
	}

	it, err := repo.AdjustStock(ctx, "i-1", -5)
	if err != nil || it.StockQuantity != 0 {
		t.Fatalf("draining to zero must succeed, got err=%v item=%+v", err, it)
	}
	if _, err := repo.AdjustStock(ctx, "i-1", -1); !errors.Is(err, interfaces.ErrNegativeStock) {
		t.Fatalf("expected ErrNegativeStock, got %v", err)
	}
	stored, _ := repo.GetByID(ctx, "i-1")
	if stored.StockQuantity != 0 {
		t.Fatalf("rejected adjustment changed stock to %d", stored.StockQuantity)
	}

	missing, err := repo.AdjustStock(ctx, "nope", 1)
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero item for unknown id, got err=%v item=%+v", err, missing)
	}
}

func TestItemMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewItemMemoryRepository()
	_, _ = repo.Create(ctx, entities.Item{ID: "a", Code: "A"})
	_, _ = repo.Create(ctx, entities.Item{ID: "b", Code: "B"})

	if _, err := repo.Create(ctx, entities.Item{ID: "a"}); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if _, err := repo.Create(ctx, entities.Item{ID: "c", Code: "B"}); !errors.Is(err, interfaces.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	if it, _ := repo.GetByCode(ctx, "B"); it.ID != "b" {
		t.Fatalf("GetByCode returned %+v", it)
	}
	if it, _ := repo.Update(ctx, entities.Item{ID: "zzz"}); it.ID != "" {
		t.Fatalf("updating a missing item must return zero value")
	}
	if ok, _ := repo.Delete(ctx, "a"); !ok {
		t.Fatalf("expected delete to report true")
	}
	if ok, _ := repo.Delete(ctx, "a"); ok {
		t.Fatalf("second delete must report false")
	}
	all, _ := repo.List(ctx)
	if len(all) != 1 || all[0].ID != "b" {
		t.Fatalf("unexpected list %+v", all)
	}
}

func TestCustomerMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerMemoryRepository()
	_, _ = repo.Create(ctx, entities.Customer{ID: "c-1", AccountNumber: "CUST001", Name: "John Doe"})
	_, _ = repo.Create(ctx, entities.Customer{ID: "c-2", AccountNumber: "CUST002", Name: "Jane Smith"})

	if _, err := repo.Create(ctx, entities.Customer{ID: "c-3", AccountNumber: "CUST002"}); !errors.Is(err, interfaces.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	if c, _ := repo.GetByAccountNumber(ctx, "CUST002"); c.ID != "c-2" {
		t.Fatalf("unexpected customer %+v", c)
	}
	updated, _ := repo.Update(ctx, entities.Customer{ID: "c-1", AccountNumber: "CUST001", Name: "John A. Doe"})
	if updated.Name != "John A. Doe" {
		t.Fatalf("update not applied: %+v", updated)
	}

	list, _ := repo.List(ctx)
	list[0].Name = "mutated"
	again, _ := repo.GetByID(ctx, "c-1")
	if again.Name != "John A. Doe" {
		t.Fatalf("List must return a copy")
	}
}

func TestBillMemoryRepository_IsolatesStoredBills(t *testing.T) {
	ctx := context.Background()
	repo := NewBillMemoryRepository()
	b := entities.Bill{
		ID:    1,
		Lines: []entities.CartLine{{ItemID: "i-1", Quantity: 2, UnitPrice: decimal.NewFromInt(3)}},
		Total: decimal.NewFromInt(6),
	}

	if _, err := repo.Append(ctx, b); err != nil {
		t.Fatalf("append: %v", err)
	}
	b.Lines[0].Quantity = 50
	if _, err := repo.Append(ctx, entities.Bill{ID: 1}); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}

	got, _ := repo.GetByID(ctx, 1)
	if got.Lines[0].Quantity != 2 {
		t.Fatalf("caller mutation leaked into the ledger")
	}
	got.Lines[0].Quantity = 99
	list, _ := repo.List(ctx)
	if list[0].Lines[0].Quantity != 2 {
		t.Fatalf("reader mutation leaked into the ledger")
	}
	if missing, _ := repo.GetByID(ctx, 2); missing.ID != 0 {
		t.Fatalf("expected zero bill")
	}
}

func TestBillMemoryRepository_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewBillMemoryRepository()
	for _, id := range []int64{3, 1, 2} {
		_, _ = repo.Append(ctx, entities.Bill{ID: id})
	}
	list, _ := repo.List(ctx)
	if list[0].ID != 3 || list[1].ID != 1 || list[2].ID != 2 {
		t.Fatalf("unexpected order %d %d %d", list[0].ID, list[1].ID, list[2].ID)
	}
}

func TestBillMemoryRepository_ListByCustomerID(t *testing.T) {
	ctx := context.Background()
	repo := NewBillMemoryRepository()
	for i, cid := range []string{"c-1", "c-2", "c-1"} {
		_, _ = repo.Append(ctx, entities.Bill{ID: int64(i + 1), CustomerID: cid})
	}

	got, err := repo.ListByCustomerID(ctx, "c-1")
	if err != nil || len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected bills %+v err=%v", got, err)
	}
	none, _ := repo.ListByCustomerID(ctx, "c-9")
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", none)
	}
}

func TestBillingPaymentMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewBillingPaymentMemoryRepository()
	_, _ = repo.Create(ctx, entities.BillingPayment{ID: "p1", BillID: 1})
	_, _ = repo.Create(ctx, entities.BillingPayment{ID: "p2", BillID: 2})
	_, _ = repo.Create(ctx, entities.BillingPayment{ID: "p3", BillID: 1})

	res, _ := repo.ListByBillID(ctx, 1)
	if len(res) != 2 || res[0].ID != "p1" || res[1].ID != "p3" {
		t.Fatalf("unexpected payments %+v", res)
	}
	if none, _ := repo.ListByBillID(ctx, 9); none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
	if p, _ := repo.GetByID(ctx, "p2"); p.BillID != 2 {
		t.Fatalf("unexpected payment %+v", p)
	}
}

func TestBillSequence_ConcurrentNextIsUnique(t *testing.T) {
	seq := NewBillSequenceFrom(10)
	const workers = 50

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[int64]bool)
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, _ := seq.Next(context.Background())
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != workers {
		t.Fatalf("expected %d unique ids, got %d", workers, len(seen))
	}
	for id := range seen {
		if id <= 10 || id > 10+workers {
			t.Fatalf("id %d outside expected range", id)
		}
	}
}
