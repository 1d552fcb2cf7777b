// Package analytics contiene los casos de uso de lectura agregada: el
// dashboard de estadísticas y el feed de actividad reciente.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// monthNames etiquetas de mes para revenueData, indexadas por mes-1.
var monthNames = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// DashboardUseCase arma las estadísticas del dashboard para un propietario.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// Si cualquier consulta falla, el dashboard completo falla: nunca se
// devuelve un objeto de stats parcialmente poblado.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetDashboard construye el DashboardResponse del propietario.
//
// Cinco consultas en paralelo:
//  1. GetTotalRevenue     → suma de facturas pagadas
//  2. GetMonthlyRevenue   → serie mensual de facturas pagadas
//  3. GetStatusBreakdown  → montos por estado (paid/pending/draft)
//  4. GetEmployeeStats    → conteos de empleados
//  5. GetRecordCounts     → totales de clientes/productos/facturas
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, ownerID string) (*dto.DashboardResponse, error) {
	type revenueResult struct {
		total decimal.Decimal
		err   error
	}
	type monthlyResult struct {
		months []repository.MonthRevenueResult
		err    error
	}
	type breakdownResult struct {
		breakdown repository.StatusBreakdownResult
		err       error
	}
	type employeesResult struct {
		stats repository.EmployeeStatsResult
		err   error
	}
	type countsResult struct {
		counts repository.RecordCountsResult
		err    error
	}

	revenueCh := make(chan revenueResult, 1)
	monthlyCh := make(chan monthlyResult, 1)
	breakdownCh := make(chan breakdownResult, 1)
	employeesCh := make(chan employeesResult, 1)
	countsCh := make(chan countsResult, 1)

	go func() {
		total, err := uc.analyticsRepo.GetTotalRevenue(ctx, ownerID)
		revenueCh <- revenueResult{total, err}
	}()
	go func() {
		months, err := uc.analyticsRepo.GetMonthlyRevenue(ctx, ownerID)
		monthlyCh <- monthlyResult{months, err}
	}()
	go func() {
		breakdown, err := uc.analyticsRepo.GetStatusBreakdown(ctx, ownerID)
		breakdownCh <- breakdownResult{breakdown, err}
	}()
	go func() {
		stats, err := uc.analyticsRepo.GetEmployeeStats(ctx, ownerID)
		employeesCh <- employeesResult{stats, err}
	}()
	go func() {
		counts, err := uc.analyticsRepo.GetRecordCounts(ctx, ownerID)
		countsCh <- countsResult{counts, err}
	}()

	revenue := <-revenueCh
	monthly := <-monthlyCh
	breakdown := <-breakdownCh
	employees := <-employeesCh
	counts := <-countsCh

	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos totales: %w", revenue.err)
	}
	if monthly.err != nil {
		return nil, fmt.Errorf("dashboard: serie mensual: %w", monthly.err)
	}
	if breakdown.err != nil {
		return nil, fmt.Errorf("dashboard: desglose por estado: %w", breakdown.err)
	}
	if employees.err != nil {
		return nil, fmt.Errorf("dashboard: empleados: %w", employees.err)
	}
	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: conteos: %w", counts.err)
	}

	// El repo ya entrega los meses ordenados ascendente y solo los que tienen
	// al menos una factura pagada; aquí solo se etiquetan.
	revenueData := make([]dto.MonthRevenue, 0, len(monthly.months))
	for _, m := range monthly.months {
		if m.Month < 1 || m.Month > 12 {
			return nil, fmt.Errorf("dashboard: mes fuera de rango: %d", m.Month)
		}
		revenueData = append(revenueData, dto.MonthRevenue{
			Month:   monthNames[m.Month-1],
			Revenue: m.Revenue,
		})
	}

	return &dto.DashboardResponse{
		Stats: dto.DashboardStats{
			TotalRevenue:      revenue.total,
			Paid:              breakdown.breakdown.Paid,
			Pending:           breakdown.breakdown.Pending,
			Draft:             breakdown.breakdown.Draft,
			TotalEmployees:    employees.stats.Total,
			ActiveEmployees:   employees.stats.Active,
			InactiveEmployees: employees.stats.Inactive,
			Managers:          employees.stats.Managers,
			Admins:            employees.stats.Admins,
			TotalCustomers:    counts.counts.Customers,
			TotalProducts:     counts.counts.Products,
			TotalInvoices:     counts.counts.Invoices,
		},
		RevenueData: revenueData,
	}, nil
}
