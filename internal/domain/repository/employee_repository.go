package repository

import "github.com/jhoicas/gestion-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee.
// Mismo contrato de acotación por owner_id que CustomerRepository.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	ListByOwner(ownerID string) ([]*entity.Employee, error)
	GetByIDAndOwner(id, ownerID string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	DeleteByIDAndOwner(id, ownerID string) (bool, error)
}
