package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo del usuario propietario.
type Product struct {
	ID        string
	OwnerID   string
	Name      string
	SKU       string
	Price     decimal.Decimal
	Stock     int
	Category  string
	Status    string // active, inactive
	LowStock  bool   // señal de reposición, independiente de Stock == 0
	CreatedAt time.Time
}
