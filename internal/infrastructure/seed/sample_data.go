package seed

import (
	"context"
	"errors"

	"bookshop_billing/internal/domain/entities"
	"bookshop_billing/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func sampleCustomers() []entities.Customer {
	return []entities.Customer{
		{AccountNumber: "CUST001", Name: "John Doe", Address: "123 Main St, Colombo 01", Phone: "+94 77 123 4567", Email: "john.doe@email.com", RegistrationDate: "2024-01-15"},
		{AccountNumber: "CUST002", Name: "Jane Smith", Address: "456 Galle Road, Colombo 03", Phone: "+94 71 987 6543", Email: "jane.smith@email.com", RegistrationDate: "2024-02-20"},
		{AccountNumber: "CUST003", Name: "Michael Johnson", Address: "789 Kandy Road, Colombo 07", Phone: "+94 76 555 1234", Email: "michael.j@email.com", RegistrationDate: "2024-03-10"},
	}
}

func sampleItems() []entities.Item {
	item := func(code, name string, cat entities.ItemCategory, price string, stock, minStock int, desc string) entities.Item {
		return entities.Item{
			Code:              code,
			Name:              name,
			Category:          cat,
			UnitPrice:         decimal.RequireFromString(price),
			StockQuantity:     stock,
			MinStockThreshold: minStock,
			Description:       desc,
		}
	}
	return []entities.Item{
		item("BOOK001", "Mathematics Grade 10", entities.ItemCategoryTextbook, "25.99", 50, 10, "Grade 10 Mathematics textbook"),
		item("BOOK002", "English Literature", entities.ItemCategoryTextbook, "22.50", 30, 5, "English Literature reference book"),
		item("STAT001", "Blue Pen Pack", entities.ItemCategoryStationery, "3.99", 100, 20, "Pack of 10 blue pens"),
		item("BOOK003", "Science Grade 11", entities.ItemCategoryTextbook, "28.75", 8, 10, "Grade 11 Science textbook"),
		item("REF001", "Oxford Dictionary", entities.ItemCategoryReference, "45.00", 15, 5, "Oxford English Dictionary"),
	}
}

// Load creates the demo customers and catalog. Records that already exist
// (same account number or item code) are left alone, so Load can run on
// every start.
func Load(ctx context.Context, customers usecase.ICustomerUseCase, items usecase.IItemUseCase, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	var conflict *usecase.ConflictError

	created := 0
	for _, c := range sampleCustomers() {
		_, err := customers.Create(ctx, c)
		if errors.As(err, &conflict) {
			continue
		}
		if err != nil {
			return err
		}
		created++
	}
	for _, it := range sampleItems() {
		_, err := items.Create(ctx, it)
		if errors.As(err, &conflict) {
			continue
		}
		if err != nil {
			return err
		}
		created++
	}
	logger.Info("sample data loaded", zap.Int("created", created))
	return nil
}
