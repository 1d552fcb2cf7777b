package entity

import "time"

// User representa una cuenta del sistema. Cada registro de negocio
// (Customer, Employee, Product, Invoice) pertenece a exactamente un User.
type User struct {
	ID           string
	Name         string
	Email        string // único a nivel global
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
