package interfaces

import (
	"context"

	"bookshop_billing/internal/domain/entities"
)

// IBillingPaymentRepository abstracts persistence for BillingPayment.
type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByBillID(ctx context.Context, billID int64) ([]entities.BillingPayment, error)
}
