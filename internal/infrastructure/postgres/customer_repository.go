package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, owner_id, name, email, phone, location, status, invoice_count, total_spent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		customer.ID, customer.OwnerID, customer.Name, customer.Email, customer.Phone,
		customer.Location, customer.Status, customer.InvoiceCount, customer.TotalSpent,
		customer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// ListByOwner lista los clientes del propietario, más recientes primero.
func (r *CustomerRepo) ListByOwner(ownerID string) ([]*entity.Customer, error) {
	query := `
		SELECT id, owner_id, name, email, phone, location, status, invoice_count, total_spent, created_at
		FROM customers WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByIDAndOwner obtiene un cliente por id+owner. Devuelve (nil, nil) si no
// existe o pertenece a otro usuario.
func (r *CustomerRepo) GetByIDAndOwner(id, ownerID string) (*entity.Customer, error) {
	query := `
		SELECT id, owner_id, name, email, phone, location, status, invoice_count, total_spent, created_at
		FROM customers WHERE id = $1 AND owner_id = $2`
	row := r.pool.QueryRow(context.Background(), query, id, ownerID)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// Update actualiza un cliente (último escritor gana).
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $3, email = $4, phone = $5, location = $6, status = $7, invoice_count = $8, total_spent = $9
		WHERE id = $1 AND owner_id = $2`
	_, err := r.pool.Exec(context.Background(), query,
		customer.ID, customer.OwnerID, customer.Name, customer.Email, customer.Phone,
		customer.Location, customer.Status, customer.InvoiceCount, customer.TotalSpent,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// DeleteByIDAndOwner elimina el cliente id+owner; false si no había fila.
func (r *CustomerRepo) DeleteByIDAndOwner(id, ownerID string) (bool, error) {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM customers WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete customer: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.Location,
		&c.Status, &c.InvoiceCount, &c.TotalSpent, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
