package dto

import "github.com/shopspring/decimal"

// DashboardStats KPIs del dashboard para un propietario.
// Paid/Pending/Draft son sumas de montos por estado; overdue queda fuera
// del desglose por diseño.
type DashboardStats struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`

	Paid    decimal.Decimal `json:"paid"`
	Pending decimal.Decimal `json:"pending"`
	Draft   decimal.Decimal `json:"draft"`

	TotalEmployees    int `json:"totalEmployees"`
	ActiveEmployees   int `json:"activeEmployees"`
	InactiveEmployees int `json:"inactiveEmployees"`
	Managers          int `json:"managers"`
	Admins            int `json:"admins"`

	TotalCustomers int `json:"totalCustomers"`
	TotalProducts  int `json:"totalProducts"`
	TotalInvoices  int `json:"totalInvoices"`
}

// MonthRevenue un punto de la serie mensual de ingresos pagados.
// Solo aparecen meses con al menos una factura pagada, ordenados por número de mes.
type MonthRevenue struct {
	Month   string          `json:"month"` // "Jan".."Dec"
	Revenue decimal.Decimal `json:"revenue"`
}

// DashboardResponse salida de GET /api/dashboard.
type DashboardResponse struct {
	Stats       DashboardStats `json:"stats"`
	RevenueData []MonthRevenue `json:"revenueData"`
}
