package response

import (
	"time"

	"bookshop_billing/internal/domain/entities"
)

type BillResponse struct {
	ID                    int64              `json:"id"`
	CustomerID            string             `json:"customer_id"`
	CustomerName          string             `json:"customer_name"`
	CustomerAccountNumber string             `json:"customer_account_number"`
	Date                  string             `json:"date"`
	Lines                 []CartLineResponse `json:"lines"`
	Subtotal              float64            `json:"subtotal"`
	TaxRate               float64            `json:"tax_rate"`
	Tax                   float64            `json:"tax"`
	Total                 float64            `json:"total"`
	ItemCount             int                `json:"item_count"`
	CreatedAt             time.Time          `json:"created_at"`
}

func FromBill(b entities.Bill) BillResponse {
	return BillResponse{
		ID:                    b.ID,
		CustomerID:            b.CustomerID,
		CustomerName:          b.CustomerName,
		CustomerAccountNumber: b.CustomerAccountNumber,
		Date:                  b.Date,
		Lines:                 fromCartLines(b.Lines),
		Subtotal:              amount(b.Subtotal),
		TaxRate:               b.TaxRate.InexactFloat64(),
		Tax:                   amount(b.Tax),
		Total:                 amount(b.Total),
		ItemCount:             b.ItemCount(),
		CreatedAt:             b.CreatedAt,
	}
}

func FromBills(bills []entities.Bill) []BillResponse {
	out := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, FromBill(b))
	}
	return out
}
