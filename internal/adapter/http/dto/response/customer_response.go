package response

import (
	"time"

	"bookshop_billing/internal/domain/entities"
)

type CustomerResponse struct {
	ID               string    `json:"id"`
	AccountNumber    string    `json:"account_number"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email,omitempty"`
	RegistrationDate string    `json:"registration_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:               c.ID,
		AccountNumber:    c.AccountNumber,
		Name:             c.Name,
		Address:          c.Address,
		Phone:            c.Phone,
		Email:            c.Email,
		RegistrationDate: c.RegistrationDate,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func FromCustomers(cs []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCustomer(c))
	}
	return out
}
