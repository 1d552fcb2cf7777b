package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Customer y Product.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Customer representa un cliente del negocio del usuario propietario.
type Customer struct {
	ID           string
	OwnerID      string
	Name         string
	Email        string
	Phone        string
	Location     string
	Status       string // active, inactive
	InvoiceCount int
	TotalSpent   decimal.Decimal
	CreatedAt    time.Time
}
