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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre PostgreSQL.
// date y due_date son columnas DATE; el monto es NUMERIC.
type InvoiceRepo struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

// Create persiste una nueva factura.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, owner_id, type, recipient, amount, status, date, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		invoice.ID, invoice.OwnerID, invoice.Type, invoice.Recipient, invoice.Amount,
		invoice.Status, invoice.Date, invoice.DueDate, invoice.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// ListByOwner lista las facturas del propietario, más recientes primero.
func (r *InvoiceRepo) ListByOwner(ownerID string) ([]*entity.Invoice, error) {
	query := `
		SELECT id, owner_id, type, recipient, amount, status, date, due_date, created_at
		FROM invoices WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// GetByIDAndOwner obtiene una factura por id+owner. Devuelve (nil, nil) si no
// existe o pertenece a otro usuario.
func (r *InvoiceRepo) GetByIDAndOwner(id, ownerID string) (*entity.Invoice, error) {
	query := `
		SELECT id, owner_id, type, recipient, amount, status, date, due_date, created_at
		FROM invoices WHERE id = $1 AND owner_id = $2`
	row := r.pool.QueryRow(context.Background(), query, id, ownerID)
	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// Update actualiza una factura (último escritor gana).
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET type = $3, recipient = $4, amount = $5, status = $6, date = $7, due_date = $8
		WHERE id = $1 AND owner_id = $2`
	_, err := r.pool.Exec(context.Background(), query,
		invoice.ID, invoice.OwnerID, invoice.Type, invoice.Recipient, invoice.Amount,
		invoice.Status, invoice.Date, invoice.DueDate,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// DeleteByIDAndOwner elimina la factura id+owner; false si no había fila.
func (r *InvoiceRepo) DeleteByIDAndOwner(id, ownerID string) (bool, error) {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM invoices WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete invoice: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.OwnerID, &inv.Type, &inv.Recipient, &inv.Amount,
		&inv.Status, &inv.Date, &inv.DueDate, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
