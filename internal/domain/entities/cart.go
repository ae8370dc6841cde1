package entities

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places kept for currency amounts.
const MoneyPlaces = 2

// CartLine is one item-and-quantity entry of the in-progress cart.
//
// UnitPrice is a snapshot taken when the item was first added; later catalog
// price edits do not change it.
type CartLine struct {
	ItemID    string          `json:"item_id"`
	ItemCode  string          `json:"item_code"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals holds the amounts derived from a set of cart lines.
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

// ComputeTotals derives subtotal, tax and total for lines.
// Tax is rounded half away from zero to MoneyPlaces.
func ComputeTotals(lines []CartLine, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	count := 0
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
		count += l.Quantity
	}
	tax := subtotal.Mul(taxRate).Round(MoneyPlaces)
	return Totals{
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal.Add(tax),
		ItemCount: count,
	}
}
