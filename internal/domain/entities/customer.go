package entities

import "time"

// Customer is a bookshop account holder.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (account_number-index): account_number
//
// Validation rules live in the `validate` tags and are enforced by the use case
// layer through a single shared validator.
type Customer struct {
	ID               string    `json:"id"`
	AccountNumber    string    `json:"account_number" validate:"required,max=32"`
	Name             string    `json:"name" validate:"required,max=120"`
	Address          string    `json:"address" validate:"required"`
	Phone            string    `json:"phone" validate:"required,max=32"`
	Email            string    `json:"email" validate:"omitempty,email"`
	RegistrationDate string    `json:"registration_date" validate:"omitempty,datetime=2006-01-02"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
