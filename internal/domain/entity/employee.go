package entity

import "time"

// Roles opcionales de Employee. Un empleado sin rol asignado no cuenta
// en los totales de managers/admins del dashboard.
const (
	EmployeeRoleManager = "manager"
	EmployeeRoleAdmin   = "admin"
)

// Employee representa un empleado del negocio del usuario propietario.
// Status y Role son opcionales: nil significa "sin asignar".
type Employee struct {
	ID        string
	OwnerID   string
	Name      string
	Email     string
	Phone     string
	Position  string
	Status    *string // active, inactive o nil
	Role      *string // manager, admin o nil
	CreatedAt time.Time
}
