package repository

import "github.com/jhoicas/gestion-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
// Todas las lecturas y mutaciones están acotadas por owner_id: un ID que
// pertenece a otro usuario se comporta igual que un ID inexistente.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	ListByOwner(ownerID string) ([]*entity.Customer, error)
	GetByIDAndOwner(id, ownerID string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	// DeleteByIDAndOwner devuelve false si no existía fila para ese id+owner.
	DeleteByIDAndOwner(id, ownerID string) (bool, error)
}
