package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest entrada para crear una factura.
// Date y DueDate llegan como fecha calendario "YYYY-MM-DD".
type CreateInvoiceRequest struct {
	Type      string           `json:"type" validate:"required,oneof=customer employee other"`
	Recipient string           `json:"recipient" validate:"required"`
	Amount    *decimal.Decimal `json:"amount" validate:"required"`
	Status    string           `json:"status" validate:"omitempty,oneof=pending paid overdue draft"`
	Date      string           `json:"date" validate:"required"`
	DueDate   string           `json:"dueDate" validate:"required"`
}

// UpdateInvoiceRequest parche parcial.
type UpdateInvoiceRequest struct {
	Type      *string          `json:"type" validate:"omitempty,oneof=customer employee other"`
	Recipient *string          `json:"recipient"`
	Amount    *decimal.Decimal `json:"amount"`
	Status    *string          `json:"status" validate:"omitempty,oneof=pending paid overdue draft"`
	Date      *string          `json:"date"`
	DueDate   *string          `json:"dueDate"`
}

// InvoiceResponse salida de una factura. Las fechas vuelven como "YYYY-MM-DD".
type InvoiceResponse struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Recipient string          `json:"recipient"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	Date      string          `json:"date"`
	DueDate   string          `json:"dueDate"`
	CreatedAt time.Time       `json:"createdAt"`
}
