package response

import (
	"bookshop_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type SalesResponse struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type RevenueResponse struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

func FromSales(date string, total decimal.Decimal) SalesResponse {
	return SalesResponse{Date: date, Total: amount(total)}
}

func FromRevenue(year, month int, total decimal.Decimal) RevenueResponse {
	return RevenueResponse{Year: year, Month: month, Total: amount(total)}
}

type CategorySummaryResponse struct {
	Category   string  `json:"category"`
	ItemCount  int     `json:"item_count"`
	StockValue float64 `json:"stock_value"`
}

type InventoryReportResponse struct {
	ItemCount       int                       `json:"item_count"`
	LowStockCount   int                       `json:"low_stock_count"`
	OutOfStockCount int                       `json:"out_of_stock_count"`
	TotalValue      float64                   `json:"total_value"`
	Categories      []CategorySummaryResponse `json:"categories"`
	LowStockItems   []ItemResponse            `json:"low_stock_items"`
}

func FromInventoryReport(r entities.InventoryReport) InventoryReportResponse {
	cats := make([]CategorySummaryResponse, 0, len(r.Categories))
	for _, c := range r.Categories {
		cats = append(cats, CategorySummaryResponse{
			Category:   string(c.Category),
			ItemCount:  c.ItemCount,
			StockValue: amount(c.StockValue),
		})
	}
	return InventoryReportResponse{
		ItemCount:       r.ItemCount,
		LowStockCount:   r.LowStockCount,
		OutOfStockCount: r.OutOfStockCount,
		TotalValue:      amount(r.TotalValue),
		Categories:      cats,
		LowStockItems:   FromItems(r.LowStockItems),
	}
}

type CustomerPurchasesResponse struct {
	Customer       CustomerResponse `json:"customer"`
	BillCount      int              `json:"bill_count"`
	TotalPurchases float64          `json:"total_purchases"`
	LastPurchase   string           `json:"last_purchase,omitempty"`
}

func FromCustomerReport(rows []entities.CustomerPurchases) []CustomerPurchasesResponse {
	out := make([]CustomerPurchasesResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, CustomerPurchasesResponse{
			Customer:       FromCustomer(r.Customer),
			BillCount:      r.BillCount,
			TotalPurchases: amount(r.TotalPurchases),
			LastPurchase:   r.LastPurchase,
		})
	}
	return out
}

type DashboardResponse struct {
	Date             string         `json:"date"`
	CustomerCount    int            `json:"customer_count"`
	ItemCount        int            `json:"item_count"`
	LowStockCount    int            `json:"low_stock_count"`
	BillCount        int            `json:"bill_count"`
	SalesToday       float64        `json:"sales_today"`
	RevenueThisMonth float64        `json:"revenue_this_month"`
	RecentBills      []BillResponse `json:"recent_bills"`
}

func FromDashboard(d entities.Dashboard) DashboardResponse {
	return DashboardResponse{
		Date:             d.Date,
		CustomerCount:    d.CustomerCount,
		ItemCount:        d.ItemCount,
		LowStockCount:    d.LowStockCount,
		BillCount:        d.BillCount,
		SalesToday:       amount(d.SalesToday),
		RevenueThisMonth: amount(d.RevenueThisMonth),
		RecentBills:      FromBills(d.RecentBills),
	}
}
