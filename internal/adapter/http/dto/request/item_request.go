package request

import (
	"strings"

	"bookshop_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ItemRequest creates or fully replaces a catalog item. Unit price accepts a
// JSON number or a decimal string.
type ItemRequest struct {
	Code              string          `json:"code" binding:"required"`
	Name              string          `json:"name" binding:"required"`
	Category          string          `json:"category" binding:"required"`
	Description       string          `json:"description"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	StockQuantity     *int            `json:"stock_quantity" binding:"required"`
	MinStockThreshold *int            `json:"min_stock_threshold"`
}

// ToEntity builds the item. A missing min_stock_threshold takes the catalog
// default.
func (r ItemRequest) ToEntity() entities.Item {
	minStock := entities.DefaultMinStockThreshold
	if r.MinStockThreshold != nil {
		minStock = *r.MinStockThreshold
	}
	stock := 0
	if r.StockQuantity != nil {
		stock = *r.StockQuantity
	}
	return entities.Item{
		Code:              strings.TrimSpace(r.Code),
		Name:              strings.TrimSpace(r.Name),
		Category:          entities.ItemCategory(strings.ToLower(strings.TrimSpace(r.Category))),
		Description:       strings.TrimSpace(r.Description),
		UnitPrice:         r.UnitPrice,
		StockQuantity:     stock,
		MinStockThreshold: minStock,
	}
}

// StockAdjustRequest adds Delta (possibly negative) to an item's stock.
type StockAdjustRequest struct {
	Delta *int `json:"delta" binding:"required"`
}
