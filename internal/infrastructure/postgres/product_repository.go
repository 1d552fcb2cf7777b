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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, owner_id, name, sku, price, stock, category, status, low_stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.OwnerID, product.Name, product.SKU, product.Price,
		product.Stock, product.Category, product.Status, product.LowStock,
		product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// ListByOwner lista los productos del propietario, más recientes primero.
func (r *ProductRepo) ListByOwner(ownerID string) ([]*entity.Product, error) {
	query := `
		SELECT id, owner_id, name, sku, price, stock, category, status, low_stock, created_at
		FROM products WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByIDAndOwner obtiene un producto por id+owner. Devuelve (nil, nil) si no
// existe o pertenece a otro usuario.
func (r *ProductRepo) GetByIDAndOwner(id, ownerID string) (*entity.Product, error) {
	query := `
		SELECT id, owner_id, name, sku, price, stock, category, status, low_stock, created_at
		FROM products WHERE id = $1 AND owner_id = $2`
	row := r.pool.QueryRow(context.Background(), query, id, ownerID)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza un producto (último escritor gana).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $3, sku = $4, price = $5, stock = $6, category = $7, status = $8, low_stock = $9
		WHERE id = $1 AND owner_id = $2`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.OwnerID, product.Name, product.SKU, product.Price,
		product.Stock, product.Category, product.Status, product.LowStock,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// DeleteByIDAndOwner elimina el producto id+owner; false si no había fila.
func (r *ProductRepo) DeleteByIDAndOwner(id, ownerID string) (bool, error) {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM products WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.SKU, &p.Price, &p.Stock,
		&p.Category, &p.Status, &p.LowStock, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
