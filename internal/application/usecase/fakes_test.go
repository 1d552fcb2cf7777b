package usecase_test

import (
	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// Repositorios en memoria que replican el contrato de los adaptadores de
// Postgres: GetByIDAndOwner devuelve (nil, nil) cuando el ID no existe o
// pertenece a otro propietario, y DeleteByIDAndOwner devuelve false en el
// mismo caso.

type fakeCustomerRepo struct {
	items map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{items: map[string]*entity.Customer{}}
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.items[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) ListByOwner(ownerID string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.items {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) GetByIDAndOwner(id, ownerID string) (*entity.Customer, error) {
	c, ok := r.items[id]
	if !ok || c.OwnerID != ownerID {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	r.items[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) DeleteByIDAndOwner(id, ownerID string) (bool, error) {
	c, ok := r.items[id]
	if !ok || c.OwnerID != ownerID {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

type fakeEmployeeRepo struct {
	items map[string]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{items: map[string]*entity.Employee{}}
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error {
	r.items[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) ListByOwner(ownerID string) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range r.items {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) GetByIDAndOwner(id, ownerID string) (*entity.Employee, error) {
	e, ok := r.items[id]
	if !ok || e.OwnerID != ownerID {
		return nil, nil
	}
	return e, nil
}

func (r *fakeEmployeeRepo) Update(e *entity.Employee) error {
	r.items[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) DeleteByIDAndOwner(id, ownerID string) (bool, error) {
	e, ok := r.items[id]
	if !ok || e.OwnerID != ownerID {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

type fakeProductRepo struct {
	items map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.items[p.ID] = p
	return nil
}

func (r *fakeProductRepo) ListByOwner(ownerID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.items {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetByIDAndOwner(id, ownerID string) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok || p.OwnerID != ownerID {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.items[p.ID] = p
	return nil
}

func (r *fakeProductRepo) DeleteByIDAndOwner(id, ownerID string) (bool, error) {
	p, ok := r.items[id]
	if !ok || p.OwnerID != ownerID {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

type fakeInvoiceRepo struct {
	items map[string]*entity.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{items: map[string]*entity.Invoice{}}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	r.items[inv.ID] = inv
	return nil
}

func (r *fakeInvoiceRepo) ListByOwner(ownerID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.items {
		if inv.OwnerID == ownerID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) GetByIDAndOwner(id, ownerID string) (*entity.Invoice, error) {
	inv, ok := r.items[id]
	if !ok || inv.OwnerID != ownerID {
		return nil, nil
	}
	return inv, nil
}

func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	r.items[inv.ID] = inv
	return nil
}

func (r *fakeInvoiceRepo) DeleteByIDAndOwner(id, ownerID string) (bool, error) {
	inv, ok := r.items[id]
	if !ok || inv.OwnerID != ownerID {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
