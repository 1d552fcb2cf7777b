package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/analytics"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
	"github.com/jhoicas/gestion-api/pkg/logger"
)

// fakeAnalyticsRepo resultados precargados por método; cualquier campo err
// distinto de nil simula un fallo de esa consulta.
type fakeAnalyticsRepo struct {
	total    decimal.Decimal
	totalErr error

	monthly    []repository.MonthRevenueResult
	monthlyErr error

	breakdown    repository.StatusBreakdownResult
	breakdownErr error

	employees    repository.EmployeeStatsResult
	employeesErr error

	counts    repository.RecordCountsResult
	countsErr error

	customers    []*entity.Customer
	customersErr error
	invoices     []*entity.Invoice
	invoicesErr  error
	products     []*entity.Product
	productsErr  error
}

func (r *fakeAnalyticsRepo) GetTotalRevenue(ctx context.Context, ownerID string) (decimal.Decimal, error) {
	return r.total, r.totalErr
}

func (r *fakeAnalyticsRepo) GetMonthlyRevenue(ctx context.Context, ownerID string) ([]repository.MonthRevenueResult, error) {
	return r.monthly, r.monthlyErr
}

func (r *fakeAnalyticsRepo) GetStatusBreakdown(ctx context.Context, ownerID string) (repository.StatusBreakdownResult, error) {
	return r.breakdown, r.breakdownErr
}

func (r *fakeAnalyticsRepo) GetEmployeeStats(ctx context.Context, ownerID string) (repository.EmployeeStatsResult, error) {
	return r.employees, r.employeesErr
}

func (r *fakeAnalyticsRepo) GetRecordCounts(ctx context.Context, ownerID string) (repository.RecordCountsResult, error) {
	return r.counts, r.countsErr
}

func (r *fakeAnalyticsRepo) RecentCustomers(ctx context.Context, ownerID string, limit int) ([]*entity.Customer, error) {
	return r.customers, r.customersErr
}

func (r *fakeAnalyticsRepo) RecentInvoices(ctx context.Context, ownerID string, limit int) ([]*entity.Invoice, error) {
	return r.invoices, r.invoicesErr
}

func (r *fakeAnalyticsRepo) RecentProducts(ctx context.Context, ownerID string, limit int) ([]*entity.Product, error) {
	return r.products, r.productsErr
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

const testOwner = "00000000-0000-0000-0000-00000000000a"

func TestGetDashboard_ArmaStatsCompletas(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		total: decimal.NewFromInt(150),
		monthly: []repository.MonthRevenueResult{
			{Month: 1, Revenue: decimal.NewFromInt(100)},
			{Month: 3, Revenue: decimal.NewFromInt(50)},
		},
		breakdown: repository.StatusBreakdownResult{
			Paid:    decimal.NewFromInt(150),
			Pending: decimal.NewFromInt(70),
			Draft:   decimal.Zero,
		},
		employees: repository.EmployeeStatsResult{Total: 4, Active: 3, Inactive: 1, Managers: 2, Admins: 1},
		counts:    repository.RecordCountsResult{Customers: 10, Products: 5, Invoices: 7},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetDashboard(context.Background(), testOwner)
	require.NoError(t, err)

	assert.True(t, out.Stats.TotalRevenue.Equal(decimal.NewFromInt(150)))
	assert.True(t, out.Stats.Paid.Equal(decimal.NewFromInt(150)))
	assert.True(t, out.Stats.Pending.Equal(decimal.NewFromInt(70)))
	assert.True(t, out.Stats.Draft.IsZero())
	assert.Equal(t, 4, out.Stats.TotalEmployees)
	assert.Equal(t, 3, out.Stats.ActiveEmployees)
	assert.Equal(t, 1, out.Stats.InactiveEmployees)
	assert.Equal(t, 2, out.Stats.Managers)
	assert.Equal(t, 1, out.Stats.Admins)
	assert.Equal(t, 10, out.Stats.TotalCustomers)
	assert.Equal(t, 5, out.Stats.TotalProducts)
	assert.Equal(t, 7, out.Stats.TotalInvoices)
}

// La serie mensual no rellena huecos: enero y marzo con ventas, febrero ausente.
func TestGetDashboard_SerieMensual_SinRellenoDeMeses(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		monthly: []repository.MonthRevenueResult{
			{Month: 1, Revenue: decimal.NewFromInt(100)},
			{Month: 3, Revenue: decimal.NewFromInt(50)},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetDashboard(context.Background(), testOwner)
	require.NoError(t, err)

	require.Len(t, out.RevenueData, 2)
	assert.Equal(t, "Jan", out.RevenueData[0].Month)
	assert.True(t, out.RevenueData[0].Revenue.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Mar", out.RevenueData[1].Month)
	assert.True(t, out.RevenueData[1].Revenue.Equal(decimal.NewFromInt(50)))
}

func TestGetDashboard_SinDatos_TodoEnCero(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		total: decimal.Zero,
		breakdown: repository.StatusBreakdownResult{
			Paid: decimal.Zero, Pending: decimal.Zero, Draft: decimal.Zero,
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetDashboard(context.Background(), testOwner)
	require.NoError(t, err)

	assert.True(t, out.Stats.TotalRevenue.IsZero())
	assert.Equal(t, 0, out.Stats.TotalEmployees)
	assert.Empty(t, out.RevenueData)
}

// Si cualquier consulta falla, el dashboard completo falla: nunca stats parciales.
func TestGetDashboard_FalloDeConsulta_PropagaError(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		employeesErr: errors.New("conexión perdida"),
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetDashboard(context.Background(), testOwner)
	assert.Error(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Feed de actividad
// ──────────────────────────────────────────────────────────────────────────────

func at(daysAgo int) time.Time {
	return time.Date(2025, 4, 30, 12, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo)
}

func TestGetRecent_FusionaYOrdenaPorFecha(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		customers: []*entity.Customer{
			{ID: "c1", Name: "Comercial XYZ", CreatedAt: at(1)},
			{ID: "c2", Name: "Tienda ABC", CreatedAt: at(4)},
		},
		invoices: []*entity.Invoice{
			{ID: "i1", Recipient: "Comercial XYZ", Amount: decimal.NewFromInt(250), Status: "paid", CreatedAt: at(0)},
			{ID: "i2", Recipient: "Tienda ABC", Amount: decimal.NewFromInt(80), Status: "pending", CreatedAt: at(5)},
		},
		products: []*entity.Product{
			{ID: "p1", Name: "Teclado", Stock: 3, CreatedAt: at(2)},
			{ID: "p2", Name: "Mouse", Stock: 40, CreatedAt: at(3)},
		},
	}
	uc := analytics.NewActivityUseCase(repo, testLogger())

	out := uc.GetRecent(context.Background(), testOwner)

	// 6 candidatos, el feed se corta en 5 y el más antiguo (i2) queda fuera.
	require.Len(t, out, 5)
	assert.Equal(t, "invoice-i1", out[0].ID)
	assert.Equal(t, "customer-c1", out[1].ID)
	assert.Equal(t, "product-p1", out[2].ID)
	assert.Equal(t, "product-p2", out[3].ID)
	assert.Equal(t, "customer-c2", out[4].ID)

	// Etiquetas y detalles del feed.
	assert.Equal(t, "created", out[0].Action)
	assert.Equal(t, `Invoice for "Comercial XYZ" ($250) - paid`, out[0].Details)
	assert.Equal(t, "added", out[1].Action)
	assert.Equal(t, `New customer "Comercial XYZ" registered`, out[1].Details)
	assert.Equal(t, "updated", out[2].Action)
	assert.Equal(t, `Product "Teclado" stock: 3`, out[2].Details)
}

// Best-effort: un fallo de lectura produce lista vacía, nunca error ni nil.
func TestGetRecent_FalloDeLectura_RetornaListaVacia(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		invoicesErr: errors.New("timeout"),
	}
	uc := analytics.NewActivityUseCase(repo, testLogger())

	out := uc.GetRecent(context.Background(), testOwner)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestGetRecent_SinRegistros_RetornaListaVacia(t *testing.T) {
	uc := analytics.NewActivityUseCase(&fakeAnalyticsRepo{}, testLogger())

	out := uc.GetRecent(context.Background(), testOwner)
	require.NotNil(t, out)
	assert.Empty(t, out)
}
