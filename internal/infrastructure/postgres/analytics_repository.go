package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard y el feed de actividad.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetTotalRevenue suma los montos de las facturas pagadas del propietario.
// COALESCE devuelve cero si no hay filas.
func (r *AnalyticsRepo) GetTotalRevenue(ctx context.Context, ownerID string) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(amount), 0)
	FROM invoices
	WHERE owner_id = $1 AND status = 'paid'`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, ownerID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.GetTotalRevenue: %w", err)
	}
	return total, nil
}

// GetMonthlyRevenue agrupa las facturas pagadas por mes calendario de `date`.
// Solo aparecen meses con al menos una factura pagada, en orden ascendente.
func (r *AnalyticsRepo) GetMonthlyRevenue(ctx context.Context, ownerID string) ([]repository.MonthRevenueResult, error) {
	const query = `
	SELECT EXTRACT(MONTH FROM date)::int AS month, SUM(amount) AS revenue
	FROM invoices
	WHERE owner_id = $1 AND status = 'paid'
	GROUP BY month
	ORDER BY month`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetMonthlyRevenue: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthRevenueResult
	for rows.Next() {
		var row repository.MonthRevenueResult
		if err := rows.Scan(&row.Month, &row.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.GetMonthlyRevenue scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetStatusBreakdown suma montos por estado (paid/pending/draft).
// Los estados sin facturas quedan en cero; overdue no participa.
func (r *AnalyticsRepo) GetStatusBreakdown(ctx context.Context, ownerID string) (repository.StatusBreakdownResult, error) {
	const query = `
	SELECT status, SUM(amount)
	FROM invoices
	WHERE owner_id = $1 AND status IN ('paid', 'pending', 'draft')
	GROUP BY status`

	out := repository.StatusBreakdownResult{
		Paid:    decimal.Zero,
		Pending: decimal.Zero,
		Draft:   decimal.Zero,
	}

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return out, fmt.Errorf("analytics.GetStatusBreakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var sum decimal.Decimal
		if err := rows.Scan(&status, &sum); err != nil {
			return out, fmt.Errorf("analytics.GetStatusBreakdown scan: %w", err)
		}
		switch status {
		case entity.InvoiceStatusPaid:
			out.Paid = sum
		case entity.InvoiceStatusPending:
			out.Pending = sum
		case entity.InvoiceStatusDraft:
			out.Draft = sum
		}
	}
	return out, rows.Err()
}

// GetEmployeeStats cuenta empleados del propietario en una sola pasada.
// status y role son NULL cuando no se han asignado: no cuentan en ningún filtro.
func (r *AnalyticsRepo) GetEmployeeStats(ctx context.Context, ownerID string) (repository.EmployeeStatsResult, error) {
	const query = `
	SELECT
	    COUNT(*)                                      AS total,
	    COUNT(*) FILTER (WHERE status = 'active')     AS active,
	    COUNT(*) FILTER (WHERE status = 'inactive')   AS inactive,
	    COUNT(*) FILTER (WHERE role = 'manager')      AS managers,
	    COUNT(*) FILTER (WHERE role = 'admin')        AS admins
	FROM employees
	WHERE owner_id = $1`

	var out repository.EmployeeStatsResult
	err := r.pool.QueryRow(ctx, query, ownerID).Scan(
		&out.Total, &out.Active, &out.Inactive, &out.Managers, &out.Admins,
	)
	if err != nil {
		return out, fmt.Errorf("analytics.GetEmployeeStats: %w", err)
	}
	return out, nil
}

// GetRecordCounts conteos simples de registros del propietario.
func (r *AnalyticsRepo) GetRecordCounts(ctx context.Context, ownerID string) (repository.RecordCountsResult, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM customers WHERE owner_id = $1),
	    (SELECT COUNT(*) FROM products  WHERE owner_id = $1),
	    (SELECT COUNT(*) FROM invoices  WHERE owner_id = $1)`

	var out repository.RecordCountsResult
	err := r.pool.QueryRow(ctx, query, ownerID).Scan(&out.Customers, &out.Products, &out.Invoices)
	if err != nil {
		return out, fmt.Errorf("analytics.GetRecordCounts: %w", err)
	}
	return out, nil
}

// RecentCustomers devuelve los `limit` clientes más recientes del propietario.
func (r *AnalyticsRepo) RecentCustomers(ctx context.Context, ownerID string, limit int) ([]*entity.Customer, error) {
	const query = `
	SELECT id, owner_id, name, email, phone, location, status, invoice_count, total_spent, created_at
	FROM customers WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.RecentCustomers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("analytics.RecentCustomers scan: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// RecentInvoices devuelve las `limit` facturas más recientes del propietario.
func (r *AnalyticsRepo) RecentInvoices(ctx context.Context, ownerID string, limit int) ([]*entity.Invoice, error) {
	const query = `
	SELECT id, owner_id, type, recipient, amount, status, date, due_date, created_at
	FROM invoices WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.RecentInvoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("analytics.RecentInvoices scan: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// RecentProducts devuelve los `limit` productos más recientes del propietario.
func (r *AnalyticsRepo) RecentProducts(ctx context.Context, ownerID string, limit int) ([]*entity.Product, error) {
	const query = `
	SELECT id, owner_id, name, sku, price, stock, category, status, low_stock, created_at
	FROM products WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.RecentProducts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("analytics.RecentProducts scan: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
