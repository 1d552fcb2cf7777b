package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name     string           `json:"name" validate:"required,min=1,max=200"`
	SKU      string           `json:"sku" validate:"required,min=1,max=100"`
	Price    *decimal.Decimal `json:"price" validate:"required"`
	Stock    int             `json:"stock"`
	Category string          `json:"category"`
	Status   string          `json:"status" validate:"omitempty,oneof=active inactive"`
	LowStock bool            `json:"lowStock"`
}

// UpdateProductRequest parche parcial.
type UpdateProductRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	SKU      *string          `json:"sku"`
	Price    *decimal.Decimal `json:"price"`
	Stock    *int             `json:"stock"`
	Category *string          `json:"category"`
	Status   *string          `json:"status" validate:"omitempty,oneof=active inactive"`
	LowStock *bool            `json:"lowStock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Category  string          `json:"category"`
	Status    string          `json:"status"`
	LowStock  bool            `json:"lowStock"`
	CreatedAt time.Time       `json:"createdAt"`
}
