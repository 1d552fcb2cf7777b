package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// MonthRevenueResult ingresos de facturas pagadas agrupados por mes calendario (1-12).
type MonthRevenueResult struct {
	Month   int
	Revenue decimal.Decimal
}

// StatusBreakdownResult suma de montos por estado de factura.
// Overdue queda fuera del desglose por diseño.
type StatusBreakdownResult struct {
	Paid    decimal.Decimal
	Pending decimal.Decimal
	Draft   decimal.Decimal
}

// EmployeeStatsResult conteos de empleados del propietario.
type EmployeeStatsResult struct {
	Total    int
	Active   int
	Inactive int
	Managers int
	Admins   int
}

// RecordCountsResult conteos simples de registros del propietario.
type RecordCountsResult struct {
	Customers int
	Products  int
	Invoices  int
}

// AnalyticsRepository consultas de solo lectura para el dashboard y el feed
// de actividad. Todas acotadas por owner_id.
type AnalyticsRepository interface {
	GetTotalRevenue(ctx context.Context, ownerID string) (decimal.Decimal, error)
	GetMonthlyRevenue(ctx context.Context, ownerID string) ([]MonthRevenueResult, error)
	GetStatusBreakdown(ctx context.Context, ownerID string) (StatusBreakdownResult, error)
	GetEmployeeStats(ctx context.Context, ownerID string) (EmployeeStatsResult, error)
	GetRecordCounts(ctx context.Context, ownerID string) (RecordCountsResult, error)

	// Lecturas recientes para el feed de actividad.
	RecentCustomers(ctx context.Context, ownerID string, limit int) ([]*entity.Customer, error)
	RecentInvoices(ctx context.Context, ownerID string, limit int) ([]*entity.Invoice, error)
	RecentProducts(ctx context.Context, ownerID string, limit int) ([]*entity.Product, error)
}
