package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		if _, err := NewMercadoPagoGateway("", false, nil); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("", true, nil)
		if err != nil || !g.mockMode {
			t.Fatalf("expected mock gateway, got err=%v", err)
		}
	})
}

func TestMercadoPagoGateway_MockPayment(t *testing.T) {
	g, _ := NewMercadoPagoGateway("", true, nil)
	g.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":57.18,"external_reference":"7"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "approved" || id == "" {
		t.Fatalf("unexpected id=%s status=%s", id, status)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("response must be json: %v", err)
	}
	if body["external_reference"] != "7" || body["transaction_amount"] != 57.18 {
		t.Fatalf("request fields must be echoed: %v", body)
	}
	if body["date_approved"] != "2024-05-01T12:00:00Z" {
		t.Fatalf("unexpected date_approved %v", body["date_approved"])
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
