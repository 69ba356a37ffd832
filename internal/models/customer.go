package models

import "github.com/shopspring/decimal"

type Customer struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Country          string `json:"country"`
	RegistrationDate Date   `json:"registration_date"`
}

type CustomerDetail struct {
	Customer
	LifetimeValue decimal.Decimal `json:"lifetime_value"`
}

type CreateCustomerRequest struct {
	Name             string `json:"name" validate:"required,max=255"`
	Email            string `json:"email" validate:"required,email"`
	Country          string `json:"country" validate:"required,max=100"`
	RegistrationDate *Date  `json:"registration_date,omitempty"`
}
