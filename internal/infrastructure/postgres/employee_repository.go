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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository sobre PostgreSQL.
// Las columnas status y role son NULL cuando no se han asignado.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (id, owner_id, name, email, phone, position, status, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		employee.ID, employee.OwnerID, employee.Name, employee.Email, employee.Phone,
		employee.Position, employee.Status, employee.Role, employee.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// ListByOwner lista los empleados del propietario, más recientes primero.
func (r *EmployeeRepo) ListByOwner(ownerID string) ([]*entity.Employee, error) {
	query := `
		SELECT id, owner_id, name, email, phone, position, status, role, created_at
		FROM employees WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// GetByIDAndOwner obtiene un empleado por id+owner. Devuelve (nil, nil) si no
// existe o pertenece a otro usuario.
func (r *EmployeeRepo) GetByIDAndOwner(id, ownerID string) (*entity.Employee, error) {
	query := `
		SELECT id, owner_id, name, email, phone, position, status, role, created_at
		FROM employees WHERE id = $1 AND owner_id = $2`
	row := r.pool.QueryRow(context.Background(), query, id, ownerID)
	e, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// Update actualiza un empleado (último escritor gana).
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	query := `
		UPDATE employees
		SET name = $3, email = $4, phone = $5, position = $6, status = $7, role = $8
		WHERE id = $1 AND owner_id = $2`
	_, err := r.pool.Exec(context.Background(), query,
		employee.ID, employee.OwnerID, employee.Name, employee.Email, employee.Phone,
		employee.Position, employee.Status, employee.Role,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// DeleteByIDAndOwner elimina el empleado id+owner; false si no había fila.
func (r *EmployeeRepo) DeleteByIDAndOwner(id, ownerID string) (bool, error) {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM employees WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete employee: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.Name, &e.Email, &e.Phone, &e.Position,
		&e.Status, &e.Role, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
