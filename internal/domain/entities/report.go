package entities

import "github.com/shopspring/decimal"

// CategorySummary aggregates the catalog for one category.
type CategorySummary struct {
	Category   ItemCategory    `json:"category"`
	ItemCount  int             `json:"item_count"`
	StockValue decimal.Decimal `json:"stock_value"`
}

type InventoryReport struct {
	ItemCount       int               `json:"item_count"`
	LowStockCount   int               `json:"low_stock_count"`
	OutOfStockCount int               `json:"out_of_stock_count"`
	TotalValue      decimal.Decimal   `json:"total_value"`
	Categories      []CategorySummary `json:"categories"`
	LowStockItems   []Item            `json:"low_stock_items"`
}

// CustomerPurchases summarises a customer's bills. LastPurchase is empty when
// the customer has never been billed.
type CustomerPurchases struct {
	Customer       Customer        `json:"customer"`
	BillCount      int             `json:"bill_count"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	LastPurchase   string          `json:"last_purchase,omitempty"`
}

type Dashboard struct {
	Date             string          `json:"date"`
	CustomerCount    int             `json:"customer_count"`
	ItemCount        int             `json:"item_count"`
	LowStockCount    int             `json:"low_stock_count"`
	BillCount        int             `json:"bill_count"`
	SalesToday       decimal.Decimal `json:"sales_today"`
	RevenueThisMonth decimal.Decimal `json:"revenue_this_month"`
	RecentBills      []Bill          `json:"recent_bills"`
}
