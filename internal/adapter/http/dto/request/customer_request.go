package request

import (
	"strings"

	"bookshop_billing/internal/domain/entities"
)

type CustomerRequest struct {
	AccountNumber    string `json:"account_number" binding:"required"`
	Name             string `json:"name" binding:"required"`
	Address          string `json:"address" binding:"required"`
	Phone            string `json:"phone" binding:"required"`
	Email            string `json:"email"`
	RegistrationDate string `json:"registration_date"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		AccountNumber:    strings.TrimSpace(r.AccountNumber),
		Name:             strings.TrimSpace(r.Name),
		Address:          strings.TrimSpace(r.Address),
		Phone:            strings.TrimSpace(r.Phone),
		Email:            strings.TrimSpace(r.Email),
		RegistrationDate: strings.TrimSpace(r.RegistrationDate),
	}
}
