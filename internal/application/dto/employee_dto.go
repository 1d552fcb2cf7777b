package dto

import "time"

// CreateEmployeeRequest entrada para crear un empleado.
// Status y Role son opcionales; un empleado sin rol no cuenta en el dashboard
// como manager ni admin.
type CreateEmployeeRequest struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    string  `json:"phone"`
	Position string  `json:"position"`
	Status   *string `json:"status" validate:"omitempty,oneof=active inactive"`
	Role     *string `json:"role" validate:"omitempty,oneof=manager admin"`
}

// UpdateEmployeeRequest parche parcial.
type UpdateEmployeeRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Position *string `json:"position"`
	Status   *string `json:"status" validate:"omitempty,oneof=active inactive"`
	Role     *string `json:"role" validate:"omitempty,oneof=manager admin"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Position  string    `json:"position"`
	Status    *string   `json:"status,omitempty"`
	Role      *string   `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
