package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ItemCategory string

const (
	ItemCategoryTextbook   ItemCategory = "textbook"
	ItemCategoryReference  ItemCategory = "reference"
	ItemCategoryStationery ItemCategory = "stationery"
	ItemCategoryDigital    ItemCategory = "digital"
)

// ItemCategories lists the fixed category set in display order.
var ItemCategories = []ItemCategory{
	ItemCategoryTextbook,
	ItemCategoryReference,
	ItemCategoryStationery,
	ItemCategoryDigital,
}

// DefaultMinStockThreshold is applied when an item is created without one.
const DefaultMinStockThreshold = 5

type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// Item is an inventory record of the Item Catalog.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (code-index): code
//
// Invariant: StockQuantity >= 0 at all times. The catalog rejects any stock
// adjustment that would break it.
type Item struct {
	ID                string          `json:"id"`
	Code              string          `json:"code" validate:"required,max=32"`
	Name              string          `json:"name" validate:"required,max=200"`
	Category          ItemCategory    `json:"category" validate:"required,oneof=textbook reference stationery digital"`
	Description       string          `json:"description"`
	UnitPrice         decimal.Decimal `json:"unit_price" validate:"gte=0"`
	StockQuantity     int             `json:"stock_quantity" validate:"gte=0"`
	MinStockThreshold int             `json:"min_stock_threshold" validate:"gte=0"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (i Item) StockStatus() StockStatus {
	switch {
	case i.StockQuantity == 0:
		return StockStatusOutOfStock
	case i.StockQuantity <= i.MinStockThreshold:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

// IsLowStock reports whether the item is at or below its threshold.
// Out-of-stock items are low stock too.
func (i Item) IsLowStock() bool {
	return i.StockQuantity <= i.MinStockThreshold
}

// StockValue is the inventory value held for the item (price x stock).
func (i Item) StockValue() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.StockQuantity)))
}
