package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bookshop_billing/internal/domain/entities"
	"bookshop_billing/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentBillID           = errors.New("invalid bill id")
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrBillAlreadyPaid                = errors.New("bill already paid")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IBillingPaymentUseCase settles committed bills through the payment provider.
type IBillingPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, billID int64, payload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByBillID(ctx context.Context, billID int64) ([]entities.BillingPayment, error)
}

// PaymentOptions tunes payload handling.
//
// In MockMode the payload is not required to carry a payment method or payer,
// since no real provider call is made. TestPayerEmail is injected as payer
// e-mail when the payload has no payer identity.
type PaymentOptions struct {
	MockMode       bool
	TestPayerEmail string
}

type BillingPaymentUseCase struct {
	repo    interfaces.IBillingPaymentRepository
	bills   interfaces.IBillRepository
	gateway interfaces.IPaymentGateway
	opts    PaymentOptions
	logger  *zap.Logger
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(
	repo interfaces.IBillingPaymentRepository,
	bills interfaces.IBillRepository,
	gateway interfaces.IPaymentGateway,
	opts PaymentOptions,
	logger *zap.Logger,
) *BillingPaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BillingPaymentUseCase{repo: repo, bills: bills, gateway: gateway, opts: opts, logger: logger.Named("payment")}
}

// CreateAndApprove charges the total of billID and records the payment.
// The amount always comes from the stored bill, never from the payload.
func (u *BillingPaymentUseCase) CreateAndApprove(ctx context.Context, billID int64, payload json.RawMessage) (entities.BillingPayment, error) {
	log := u.logger.With(zap.Int64("bill_id", billID))
	log.Info("create-and-approve start", zap.Int("payload_len", len(payload)))

	if billID <= 0 {
		return entities.BillingPayment{}, ErrInvalidPaymentBillID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !u.opts.MockMode {
			log.Info("invalid payload")
			return entities.BillingPayment{}, ErrInvalidProviderPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Warn("gateway not configured")
		return entities.BillingPayment{}, ErrPaymentGatewayNotConfigured
	}

	bill, err := u.bills.GetByID(ctx, billID)
	if err != nil {
		log.Error("failed loading bill", zap.Error(err))
		return entities.BillingPayment{}, err
	}
	if bill.ID == 0 {
		return entities.BillingPayment{}, newNotFound("bill", strconv.FormatInt(billID, 10))
	}

	previous, err := u.repo.ListByBillID(ctx, billID)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	for _, p := range previous {
		if p.Status == entities.PaymentStatusApproved {
			log.Info("bill already paid", zap.String("payment_id", p.ID))
			return entities.BillingPayment{}, ErrBillAlreadyPaid
		}
	}

	request, err := u.enrichPayload(bill, payload)
	if err != nil {
		log.Info("payload rejected", zap.Error(err))
		return entities.BillingPayment{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, request)
	if err != nil {
		log.Error("payment gateway failed", zap.Error(err))
		return entities.BillingPayment{}, classifyGatewayError(err)
	}
	log.Info("payment gateway success", zap.String("provider_payment_id", providerID), zap.String("provider_status", providerStatus))

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("provider response unmarshal failed", zap.Error(err))
	}

	p := entities.BillingPayment{
		ID:                 providerID,
		BillID:             bill.ID,
		Amount:             bill.Total,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.BillingPayment{}, err
	}
	log.Info("create-and-approve success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrInvalidID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByBillID(ctx context.Context, billID int64) ([]entities.BillingPayment, error) {
	if billID <= 0 {
		return nil, ErrInvalidPaymentBillID
	}
	return u.repo.ListByBillID(ctx, billID)
}

// enrichPayload links the provider request to the bill: reference,
// description and the authoritative amount.
func (u *BillingPaymentUseCase) enrichPayload(bill entities.Bill, payload json.RawMessage) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil || req == nil {
		if !u.opts.MockMode {
			return nil, ErrInvalidProviderPayload
		}
		req = map[string]any{}
	}

	if !u.opts.MockMode {
		if !hasNonEmptyString(req, "payment_method_id") {
			return nil, ErrInvalidProviderPayload
		}
		u.ensurePayerDefaults(req)
		if !hasPayer(req) {
			return nil, ErrInvalidProviderPayload
		}
	}

	ref := strconv.FormatInt(bill.ID, 10)
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = ref
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Bill %s - %s", ref, bill.CustomerName)
	}
	req["transaction_amount"] = bill.Total.InexactFloat64()

	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (u *BillingPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && u.opts.TestPayerEmail != "" {
		payer["email"] = u.opts.TestPayerEmail
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

// classifyGatewayError maps provider error bodies onto stable errors. The SDK
// only exposes the raw response text, hence the substring checks.
func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found"), strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "\"error\":\"unauthorized\""), strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\""), strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
