package repository

import "github.com/jhoicas/gestion-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	ListByOwner(ownerID string) ([]*entity.Product, error)
	GetByIDAndOwner(id, ownerID string) (*entity.Product, error)
	Update(product *entity.Product) error
	DeleteByIDAndOwner(id, ownerID string) (bool, error)
}
