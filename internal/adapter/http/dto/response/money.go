package response

import (
	"bookshop_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// amount renders a currency value rounded to cents.
func amount(d decimal.Decimal) float64 {
	return d.Round(entities.MoneyPlaces).InexactFloat64()
}
