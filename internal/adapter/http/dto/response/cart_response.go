package response

import (
	"bookshop_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CartLineResponse struct {
	Index     int     `json:"index"`
	ItemID    string  `json:"item_id"`
	ItemCode  string  `json:"item_code"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type CartResponse struct {
	Lines     []CartLineResponse `json:"lines"`
	Subtotal  float64            `json:"subtotal"`
	TaxRate   float64            `json:"tax_rate"`
	Tax       float64            `json:"tax"`
	Total     float64            `json:"total"`
	ItemCount int                `json:"item_count"`
}

func FromCartLine(index int, l entities.CartLine) CartLineResponse {
	return CartLineResponse{
		Index:     index,
		ItemID:    l.ItemID,
		ItemCode:  l.ItemCode,
		Name:      l.Name,
		UnitPrice: amount(l.UnitPrice),
		Quantity:  l.Quantity,
		LineTotal: amount(l.LineTotal()),
	}
}

func fromCartLines(lines []entities.CartLine) []CartLineResponse {
	out := make([]CartLineResponse, 0, len(lines))
	for i, l := range lines {
		out = append(out, FromCartLine(i, l))
	}
	return out
}

func FromCart(lines []entities.CartLine, totals entities.Totals, taxRate decimal.Decimal) CartResponse {
	return CartResponse{
		Lines:     fromCartLines(lines),
		Subtotal:  amount(totals.Subtotal),
		TaxRate:   taxRate.InexactFloat64(),
		Tax:       amount(totals.Tax),
		Total:     amount(totals.Total),
		ItemCount: totals.ItemCount,
	}
}
