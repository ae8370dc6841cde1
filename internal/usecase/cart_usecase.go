package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"bookshop_billing/internal/domain/entities"
	"bookshop_billing/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultTaxRate is the tax applied to the cart subtotal when none is configured.
var DefaultTaxRate = decimal.RequireFromString("0.10")

// ICartUseCase is the Cart Accumulator: it assembles lines into the single
// active cart and commits them into an immutable Bill.
type ICartUseCase interface {
	AddLine(ctx context.Context, itemID string, quantity int) (entities.CartLine, error)
	RemoveLine(index int)
	Lines() []entities.CartLine
	Totals() entities.Totals
	TaxRate() decimal.Decimal
	Clear()
	Commit(ctx context.Context, customerID, date string) (entities.Bill, error)
}

// CartUseCase owns the process-wide cart.
//
// Every operation holds mu for its whole duration, so concurrent HTTP
// requests observe the cart as if a single thread drove it.
type CartUseCase struct {
	mu      sync.Mutex
	lines   []entities.CartLine
	taxRate decimal.Decimal

	items     interfaces.IItemRepository
	customers interfaces.ICustomerRepository
	ledger    interfaces.IBillRepository
	sequence  interfaces.IBillSequence

	now    func() time.Time
	logger *zap.Logger
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(
	items interfaces.IItemRepository,
	customers interfaces.ICustomerRepository,
	ledger interfaces.IBillRepository,
	sequence interfaces.IBillSequence,
	taxRate decimal.Decimal,
	logger *zap.Logger,
) *CartUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartUseCase{
		taxRate:   taxRate,
		items:     items,
		customers: customers,
		ledger:    ledger,
		sequence:  sequence,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger.Named("cart"),
	}
}

// WithClock replaces the clock used for bill timestamps and the default bill date.
func (u *CartUseCase) WithClock(now func() time.Time) *CartUseCase {
	u.now = now
	return u
}

// AddLine reserves quantity units of itemID in the cart.
//
// Lines are merged by item: adding an item already in the cart increases the
// existing line. The catalog stock is only read here; it is decremented at
// commit time.
func (u *CartUseCase) AddLine(ctx context.Context, itemID string, quantity int) (entities.CartLine, error) {
	itemID = strings.TrimSpace(itemID)
	if quantity <= 0 {
		return entities.CartLine{}, ErrInvalidQuantity
	}
	if itemID == "" {
		return entities.CartLine{}, ErrMissingItemID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	item, err := u.items.GetByID(ctx, itemID)
	if err != nil {
		return entities.CartLine{}, fmt.Errorf("load item %s: %w", itemID, err)
	}
	if item.ID == "" {
		return entities.CartLine{}, newNotFound("item", itemID)
	}

	idx := u.indexOf(itemID)
	reserved := 0
	if idx >= 0 {
		reserved = u.lines[idx].Quantity
	}
	if quantity > item.StockQuantity-reserved {
		u.logger.Info("add rejected: insufficient stock",
			zap.String("item_id", itemID),
			zap.Int("requested", quantity),
			zap.Int("available", item.StockQuantity),
			zap.Int("reserved", reserved),
		)
		return entities.CartLine{}, &InsufficientStockError{
			ItemID:          itemID,
			Requested:       quantity,
			Available:       item.StockQuantity,
			AlreadyReserved: reserved,
		}
	}

	if idx >= 0 {
		u.lines[idx].Quantity += quantity
		return u.lines[idx], nil
	}

	line := entities.CartLine{
		ItemID:    item.ID,
		ItemCode:  item.Code,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		Quantity:  quantity,
	}
	u.lines = append(u.lines, line)
	u.logger.Debug("line added", zap.String("item_id", itemID), zap.Int("quantity", quantity))
	return line, nil
}

// RemoveLine drops the line at index. Out-of-range indices are ignored.
func (u *CartUseCase) RemoveLine(index int) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if index < 0 || index >= len(u.lines) {
		return
	}
	u.lines = append(u.lines[:index], u.lines[index+1:]...)
}

func (u *CartUseCase) Lines() []entities.CartLine {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]entities.CartLine, len(u.lines))
	copy(out, u.lines)
	return out
}

func (u *CartUseCase) Totals() entities.Totals {
	u.mu.Lock()
	defer u.mu.Unlock()

	return entities.ComputeTotals(u.lines, u.taxRate)
}

func (u *CartUseCase) TaxRate() decimal.Decimal {
	return u.taxRate
}

func (u *CartUseCase) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.lines = nil
}

// Commit turns the cart into a Bill for customerID dated date (YYYY-MM-DD,
// today when blank).
//
// Nothing changes when a precondition fails or the ledger rejects the bill.
// Once the bill is recorded, stock is decremented line by line on a best
// effort basis: a failed adjustment is logged and skipped, the bill stands.
func (u *CartUseCase) Commit(ctx context.Context, customerID, date string) (entities.Bill, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Bill{}, ErrMissingCustomer
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if len(u.lines) == 0 {
		return entities.Bill{}, ErrCartEmpty
	}

	now := u.now()
	billDate := now.Format(entities.BillDateLayout)
	if strings.TrimSpace(date) != "" {
		d, ok := parseCalendarDate(date)
		if !ok {
			return entities.Bill{}, ErrInvalidBillDate
		}
		billDate = d.Format(entities.BillDateLayout)
	}

	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return entities.Bill{}, fmt.Errorf("load customer %s: %w", customerID, err)
	}
	if customer.ID == "" {
		return entities.Bill{}, newNotFound("customer", customerID)
	}

	id, err := u.sequence.Next(ctx)
	if err != nil {
		return entities.Bill{}, fmt.Errorf("next bill id: %w", err)
	}

	lines := make([]entities.CartLine, len(u.lines))
	copy(lines, u.lines)
	totals := entities.ComputeTotals(lines, u.taxRate)

	bill := entities.Bill{
		ID:                    id,
		CustomerID:            customer.ID,
		CustomerName:          customer.Name,
		CustomerAccountNumber: customer.AccountNumber,
		Date:                  billDate,
		Lines:                 lines,
		Subtotal:              totals.Subtotal,
		TaxRate:               u.taxRate,
		Tax:                   totals.Tax,
		Total:                 totals.Total,
		CreatedAt:             now,
	}

	created, err := u.ledger.Append(ctx, bill)
	if err != nil {
		u.logger.Error("bill append failed", zap.Int64("bill_id", id), zap.Error(err))
		return entities.Bill{}, fmt.Errorf("append bill %d: %w", id, err)
	}

	for _, l := range lines {
		adjusted, err := u.items.AdjustStock(ctx, l.ItemID, -l.Quantity)
		if err != nil {
			u.logger.Warn("stock adjustment skipped",
				zap.Int64("bill_id", id),
				zap.String("item_id", l.ItemID),
				zap.Int("quantity", l.Quantity),
				zap.Error(err),
			)
			continue
		}
		if adjusted.ID == "" {
			u.logger.Warn("stock adjustment skipped: item no longer in catalog",
				zap.Int64("bill_id", id),
				zap.String("item_id", l.ItemID),
			)
		}
	}

	u.lines = nil
	u.logger.Info("bill committed",
		zap.Int64("bill_id", created.ID),
		zap.String("customer_id", created.CustomerID),
		zap.String("total", created.Total.StringFixed(entities.MoneyPlaces)),
	)
	return created, nil
}

func (u *CartUseCase) indexOf(itemID string) int {
	for i, l := range u.lines {
		if l.ItemID == itemID {
			return i
		}
	}
	return -1
}
