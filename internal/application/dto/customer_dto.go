package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest entrada para crear un cliente.
// OwnerID no se acepta del cliente: se estampa siempre desde el token.
type CreateCustomerRequest struct {
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Location     string          `json:"location"`
	Status       string          `json:"status" validate:"omitempty,oneof=active inactive"`
	InvoiceCount int             `json:"invoiceCount"`
	TotalSpent   decimal.Decimal `json:"totalSpent"`
}

// UpdateCustomerRequest parche parcial: solo los campos presentes se aplican.
type UpdateCustomerRequest struct {
	Name         *string          `json:"name"`
	Email        *string          `json:"email"`
	Phone        *string          `json:"phone"`
	Location     *string          `json:"location"`
	Status       *string          `json:"status" validate:"omitempty,oneof=active inactive"`
	InvoiceCount *int             `json:"invoiceCount"`
	TotalSpent   *decimal.Decimal `json:"totalSpent"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Location     string          `json:"location"`
	Status       string          `json:"status"`
	InvoiceCount int             `json:"invoiceCount"`
	TotalSpent   decimal.Decimal `json:"totalSpent"`
	CreatedAt    time.Time       `json:"createdAt"`
}
