package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillDateLayout is the calendar date format used for Bill.Date.
const BillDateLayout = "2006-01-02"

// Bill is a committed sales transaction.
//
// Domain notes:
//   - Customer name and account number are snapshots taken at commit time, so
//     later customer edits never leak into historical bills.
//   - Bills are append-only: once created no field changes.
//
// Storage model (DynamoDB):
//   - PK: id (number, from the bill sequence)
//   - GSI1 (customer_id-index): customer_id
type Bill struct {
	ID                    int64           `json:"id"`
	CustomerID            string          `json:"customer_id"`
	CustomerName          string          `json:"customer_name"`
	CustomerAccountNumber string          `json:"customer_account_number"`
	Date                  string          `json:"date"`
	Lines                 []CartLine      `json:"lines"`
	Subtotal              decimal.Decimal `json:"subtotal"`
	TaxRate               decimal.Decimal `json:"tax_rate"`
	Tax                   decimal.Decimal `json:"tax"`
	Total                 decimal.Decimal `json:"total"`
	CreatedAt             time.Time       `json:"created_at"`
}

// Clone returns a copy that shares no mutable state with b.
func (b Bill) Clone() Bill {
	out := b
	if b.Lines != nil {
		out.Lines = make([]CartLine, len(b.Lines))
		copy(out.Lines, b.Lines)
	}
	return out
}

// ItemCount is the number of units sold on the bill.
func (b Bill) ItemCount() int {
	n := 0
	for _, l := range b.Lines {
		n += l.Quantity
	}
	return n
}
