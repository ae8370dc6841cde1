package request

import (
	"encoding/json"
	"testing"

	"bookshop_billing/internal/domain/entities"
)

func TestItemRequest_ToEntity(t *testing.T) {
	t.Run("defaults min stock threshold", func(t *testing.T) {
		var r ItemRequest
		body := `{"code":" TXT001 ","name":"Mathematics Grade 10","category":"Textbook","unit_price":"12.50","stock_quantity":50}`
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			t.Fatalf("unexpected unmarshal error: %v", err)
		}

		it := r.ToEntity()
		if it.Code != "TXT001" {
			t.Fatalf("expected trimmed code, got %q", it.Code)
		}
		if it.Category != entities.ItemCategoryTextbook {
			t.Fatalf("expected lowercased category, got %q", it.Category)
		}
		if it.MinStockThreshold != entities.DefaultMinStockThreshold {
			t.Fatalf("expected default threshold %d, got %d", entities.DefaultMinStockThreshold, it.MinStockThreshold)
		}
		if it.StockQuantity != 50 || it.UnitPrice.String() != "12.5" {
			t.Fatalf("unexpected stock/price: %d %s", it.StockQuantity, it.UnitPrice)
		}
	})

	t.Run("keeps explicit zero threshold", func(t *testing.T) {
		var r ItemRequest
		body := `{"code":"X","name":"X","category":"digital","unit_price":1,"stock_quantity":0,"min_stock_threshold":0}`
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			t.Fatalf("unexpected unmarshal error: %v", err)
		}
		if got := r.ToEntity().MinStockThreshold; got != 0 {
			t.Fatalf("expected threshold 0, got %d", got)
		}
	})
}

func TestCustomerRequest_ToEntity(t *testing.T) {
	r := CustomerRequest{AccountNumber: " CUST009 ", Name: " Ada ", Address: "x", Phone: "1", Email: " ada@example.com "}
	c := r.ToEntity()
	if c.AccountNumber != "CUST009" || c.Name != "Ada" || c.Email != "ada@example.com" {
		t.Fatalf("unexpected customer: %+v", c)
	}
	if c.ID != "" {
		t.Fatalf("request must not carry an id, got %q", c.ID)
	}
}
