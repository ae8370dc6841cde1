package usecase

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"bookshop_billing/internal/domain/entities"
	"bookshop_billing/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// DashboardRecentBills is the number of bills shown on the dashboard.
const DashboardRecentBills = 5

// IReportUseCase exposes read-only views over the Bill Ledger and catalog.
// None of its operations mutate stored data.
type IReportUseCase interface {
	ListBills(ctx context.Context) ([]entities.Bill, error)
	GetBill(ctx context.Context, id int64) (entities.Bill, error)
	RecentBills(ctx context.Context, n int) ([]entities.Bill, error)
	SalesOnDate(ctx context.Context, date string) (decimal.Decimal, error)
	RevenueInMonth(ctx context.Context, year, month int) (decimal.Decimal, error)
	BillsForCustomer(ctx context.Context, customerID string) ([]entities.Bill, error)
	BillsInRange(ctx context.Context, start, end string) ([]entities.Bill, error)
	InventoryReport(ctx context.Context) (entities.InventoryReport, error)
	CustomerReport(ctx context.Context) ([]entities.CustomerPurchases, error)
	Dashboard(ctx context.Context, today time.Time) (entities.Dashboard, error)
}

type ReportUseCase struct {
	ledger    interfaces.IBillRepository
	items     interfaces.IItemRepository
	customers interfaces.ICustomerRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(ledger interfaces.IBillRepository, items interfaces.IItemRepository, customers interfaces.ICustomerRepository) *ReportUseCase {
	return &ReportUseCase{ledger: ledger, items: items, customers: customers}
}

func (u *ReportUseCase) ListBills(ctx context.Context) ([]entities.Bill, error) {
	return u.ledger.List(ctx)
}

func (u *ReportUseCase) GetBill(ctx context.Context, id int64) (entities.Bill, error) {
	if id <= 0 {
		return entities.Bill{}, ErrInvalidID
	}
	b, err := u.ledger.GetByID(ctx, id)
	if err != nil {
		return entities.Bill{}, err
	}
	if b.ID == 0 {
		return entities.Bill{}, newNotFound("bill", strconv.FormatInt(id, 10))
	}
	return b, nil
}

// RecentBills returns at most n bills, latest date first. Bills sharing a
// date keep their ledger order.
func (u *ReportUseCase) RecentBills(ctx context.Context, n int) ([]entities.Bill, error) {
	if n <= 0 {
		return []entities.Bill{}, nil
	}
	bills, err := u.ledger.List(ctx)
	if err != nil {
		return nil, err
	}
	return recentBills(bills, n), nil
}

// SalesOnDate sums bill totals dated date.
func (u *ReportUseCase) SalesOnDate(ctx context.Context, date string) (decimal.Decimal, error) {
	d, ok := parseCalendarDate(date)
	if !ok {
		return decimal.Zero, ErrInvalidBillDate
	}
	bills, err := u.ledger.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return salesOnDate(bills, d.Format(entities.BillDateLayout)), nil
}

// RevenueInMonth sums bill totals dated within month/year.
func (u *ReportUseCase) RevenueInMonth(ctx context.Context, year, month int) (decimal.Decimal, error) {
	if month < 1 || month > 12 {
		return decimal.Zero, ErrInvalidMonth
	}
	bills, err := u.ledger.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return revenueInMonth(bills, year, time.Month(month)), nil
}

func (u *ReportUseCase) BillsForCustomer(ctx context.Context, customerID string) ([]entities.Bill, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrMissingCustomer
	}
	return u.ledger.ListByCustomerID(ctx, customerID)
}

// BillsInRange returns bills dated between start and end, both inclusive.
// An inverted range yields no bills.
func (u *ReportUseCase) BillsInRange(ctx context.Context, start, end string) ([]entities.Bill, error) {
	from, ok := parseCalendarDate(start)
	if !ok {
		return nil, ErrInvalidDateRange
	}
	to, ok := parseCalendarDate(end)
	if !ok {
		return nil, ErrInvalidDateRange
	}
	bills, err := u.ledger.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Bill, 0)
	for _, b := range bills {
		d, ok := parseCalendarDate(b.Date)
		if !ok {
			continue
		}
		if !d.Before(from) && !d.After(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (u *ReportUseCase) InventoryReport(ctx context.Context) (entities.InventoryReport, error) {
	items, err := u.items.List(ctx)
	if err != nil {
		return entities.InventoryReport{}, err
	}

	report := entities.InventoryReport{
		ItemCount:     len(items),
		TotalValue:    decimal.Zero,
		LowStockItems: make([]entities.Item, 0),
	}
	byCategory := make(map[entities.ItemCategory]*entities.CategorySummary)
	for _, it := range items {
		value := it.StockValue()
		report.TotalValue = report.TotalValue.Add(value)
		if it.IsLowStock() {
			report.LowStockCount++
			report.LowStockItems = append(report.LowStockItems, it)
		}
		if it.StockQuantity == 0 {
			report.OutOfStockCount++
		}
		s, ok := byCategory[it.Category]
		if !ok {
			s = &entities.CategorySummary{Category: it.Category, StockValue: decimal.Zero}
			byCategory[it.Category] = s
		}
		s.ItemCount++
		s.StockValue = s.StockValue.Add(value)
	}

	report.Categories = make([]entities.CategorySummary, 0, len(byCategory))
	for _, c := range entities.ItemCategories {
		if s, ok := byCategory[c]; ok {
			report.Categories = append(report.Categories, *s)
		}
	}
	return report, nil
}

// CustomerReport lists every customer with their purchase totals.
func (u *ReportUseCase) CustomerReport(ctx context.Context) ([]entities.CustomerPurchases, error) {
	customers, err := u.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	bills, err := u.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	byCustomer := make(map[string]*entities.CustomerPurchases, len(customers))
	out := make([]entities.CustomerPurchases, len(customers))
	for i, c := range customers {
		out[i] = entities.CustomerPurchases{Customer: c, TotalPurchases: decimal.Zero}
		byCustomer[c.ID] = &out[i]
	}
	for _, b := range bills {
		p, ok := byCustomer[b.CustomerID]
		if !ok {
			continue
		}
		p.BillCount++
		p.TotalPurchases = p.TotalPurchases.Add(b.Total)
		if b.Date > p.LastPurchase {
			p.LastPurchase = b.Date
		}
	}
	return out, nil
}

func (u *ReportUseCase) Dashboard(ctx context.Context, today time.Time) (entities.Dashboard, error) {
	customers, err := u.customers.List(ctx)
	if err != nil {
		return entities.Dashboard{}, err
	}
	items, err := u.items.List(ctx)
	if err != nil {
		return entities.Dashboard{}, err
	}
	bills, err := u.ledger.List(ctx)
	if err != nil {
		return entities.Dashboard{}, err
	}

	lowStock := 0
	for _, it := range items {
		if it.IsLowStock() {
			lowStock++
		}
	}
	date := today.Format(entities.BillDateLayout)
	return entities.Dashboard{
		Date:             date,
		CustomerCount:    len(customers),
		ItemCount:        len(items),
		LowStockCount:    lowStock,
		BillCount:        len(bills),
		SalesToday:       salesOnDate(bills, date),
		RevenueThisMonth: revenueInMonth(bills, today.Year(), today.Month()),
		RecentBills:      recentBills(bills, DashboardRecentBills),
	}, nil
}

func recentBills(bills []entities.Bill, n int) []entities.Bill {
	sorted := make([]entities.Bill, len(bills))
	copy(sorted, bills)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func salesOnDate(bills []entities.Bill, date string) decimal.Decimal {
	sum := decimal.Zero
	for _, b := range bills {
		if b.Date == date {
			sum = sum.Add(b.Total)
		}
	}
	return sum
}

func revenueInMonth(bills []entities.Bill, year int, month time.Month) decimal.Decimal {
	sum := decimal.Zero
	for _, b := range bills {
		d, ok := parseCalendarDate(b.Date)
		if !ok {
			continue
		}
		if d.Year() == year && d.Month() == month {
			sum = sum.Add(b.Total)
		}
	}
	return sum
}
