package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del día y del mes en curso más los widgets de la pantalla principal.
type DashboardSummaryDTO struct {
	// Ventas de hoy (00:00 – 23:59, hora local del servidor)
	TodaySales decimal.Decimal `json:"today_sales"`
	// Ventas del mes en curso (día 1 – hoy)
	MonthSales decimal.Decimal `json:"month_sales"`

	CustomerCount int `json:"customer_count"`
	LowStockCount int `json:"low_stock_count"`

	// Últimas 10 ventas (fecha descendente)
	RecentSales []SaleResponse `json:"recent_sales"`
	// Productos en o por debajo de su umbral de reabastecimiento
	LowStockProducts []ProductResponse `json:"low_stock_products"`

	// Metadatos del período, ej: "Septiembre 2026"
	DateLabel string `json:"date_label"`
}
