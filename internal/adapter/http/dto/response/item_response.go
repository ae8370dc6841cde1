package response

import (
	"time"

	"bookshop_billing/internal/domain/entities"
)

type ItemResponse struct {
	ID                string    `json:"id"`
	Code              string    `json:"code"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Description       string    `json:"description,omitempty"`
	UnitPrice         float64   `json:"unit_price"`
	StockQuantity     int       `json:"stock_quantity"`
	MinStockThreshold int       `json:"min_stock_threshold"`
	StockStatus       string    `json:"stock_status"`
	StockValue        float64   `json:"stock_value"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromItem(it entities.Item) ItemResponse {
	return ItemResponse{
		ID:                it.ID,
		Code:              it.Code,
		Name:              it.Name,
		Category:          string(it.Category),
		Description:       it.Description,
		UnitPrice:         amount(it.UnitPrice),
		StockQuantity:     it.StockQuantity,
		MinStockThreshold: it.MinStockThreshold,
		StockStatus:       string(it.StockStatus()),
		StockValue:        amount(it.StockValue()),
		CreatedAt:         it.CreatedAt,
		UpdatedAt:         it.UpdatedAt,
	}
}

func FromItems(items []entities.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromItem(it))
	}
	return out
}
