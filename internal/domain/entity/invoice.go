package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de factura según el destinatario.
const (
	InvoiceTypeCustomer = "customer"
	InvoiceTypeEmployee = "employee"
	InvoiceTypeOther    = "other"
)

// Estados del ciclo de vida de una factura.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
	InvoiceStatusDraft   = "draft"
)

// Invoice representa una factura del usuario propietario.
// Recipient es texto libre: la factura no referencia Customer ni Employee por ID.
type Invoice struct {
	ID        string
	OwnerID   string
	Type      string // customer, employee, other
	Recipient string
	Amount    decimal.Decimal
	Status    string // pending, paid, overdue, draft
	Date      time.Time
	DueDate   time.Time
	CreatedAt time.Time
}
