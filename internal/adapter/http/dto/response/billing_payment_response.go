package response

import (
	"time"

	"bookshop_billing/internal/domain/entities"
)

type BillingPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	BillID      int64     `json:"bill_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromBillingPayment(p entities.BillingPayment) BillingPaymentResponse {
	return BillingPaymentResponse{
		PaymentID:          p.ID,
		ID:                 p.ID,
		BillID:             p.BillID,
		Amount:             amount(p.Amount),
		PaymentDate:        p.Date,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromBillingPayments(ps []entities.BillingPayment) []BillingPaymentResponse {
	out := make([]BillingPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromBillingPayment(p))
	}
	return out
}
