package repository

import "github.com/jhoicas/gestion-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	ListByOwner(ownerID string) ([]*entity.Invoice, error)
	GetByIDAndOwner(id, ownerID string) (*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	DeleteByIDAndOwner(id, ownerID string) (bool, error)
}
