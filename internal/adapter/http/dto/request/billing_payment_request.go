package request

import "encoding/json"

// BillingPaymentCreateRequest is the optional envelope accepted by the bill
// payment route.
//
// `provider_payload` is forwarded as-is (raw JSON) to support varying Mercado
// Pago schemas. A body without the envelope is treated as the payload itself.
type BillingPaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
