package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// BillingPayment records the settlement of a Bill through the payment provider.
//
// A payment never modifies its Bill; it is a separate record pointing at it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (bill_id-index): bill_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for audit.
//   - ProviderPayload is the parsed representation, useful for debugging.
type BillingPayment struct {
	ID     string          `json:"id"`
	BillID int64           `json:"bill_id"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Status PaymentStatus   `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
