// Package analytics contiene el caso de uso del dashboard: el resumen de
// métricas que alimenta la pantalla principal del CRM.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/crm-api/internal/application/dto"
	appsales "github.com/jhoicas/crm-api/internal/application/sales"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

const dashboardRecentSales = 10 // ventas recientes en el widget del dashboard

// DashboardUseCase genera el resumen del día y del mes en curso.
//
// Fuente de datos: los repositorios de ventas, clientes y productos
// (consultas read-only); no hay tabla de métricas materializada.
type DashboardUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository

	now func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		now:          time.Now,
	}
}

// WithClock reemplaza el reloj del caso de uso. Para tests.
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro consultas en paralelo:
//  1. Ventas del mes (incluye las de hoy) → MonthSales, TodaySales, RecentSales parciales
//  2. Todas las ventas                    → RecentSales
//  3. Count de clientes                   → CustomerCount
//  4. Productos bajo umbral               → LowStockCount + LowStockProducts
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	type salesResult struct {
		sales []*entity.Sale
		err   error
	}
	type countResult struct {
		n   int
		err error
	}
	type productsResult struct {
		products []*entity.Product
		err      error
	}

	monthCh := make(chan salesResult, 1)
	allCh := make(chan salesResult, 1)
	customersCh := make(chan countResult, 1)
	lowStockCh := make(chan productsResult, 1)

	go func() {
		sales, err := uc.saleRepo.ListByDateRange(monthStart, monthEnd)
		monthCh <- salesResult{sales, err}
	}()
	go func() {
		sales, err := uc.saleRepo.List()
		allCh <- salesResult{sales, err}
	}()
	go func() {
		n, err := uc.customerRepo.Count()
		customersCh <- countResult{n, err}
	}()
	go func() {
		products, err := uc.productRepo.ListLowStock()
		lowStockCh <- productsResult{products, err}
	}()

	month := <-monthCh
	all := <-allCh
	customers := <-customersCh
	lowStock := <-lowStockCh

	if month.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", month.err)
	}
	if all.err != nil {
		return nil, fmt.Errorf("dashboard: ventas recientes: %w", all.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de clientes: %w", customers.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: productos bajo umbral: %w", lowStock.err)
	}

	todaySales := decimal.Zero
	monthSales := decimal.Zero
	for _, s := range month.sales {
		monthSales = monthSales.Add(s.Total)
		if !s.Date.Before(todayStart) && s.Date.Before(todayEnd) {
			todaySales = todaySales.Add(s.Total)
		}
	}

	recent := make([]*entity.Sale, len(all.sales))
	copy(recent, all.sales)
	sort.Slice(recent, func(i, j int) bool { return recent[i].Date.After(recent[j].Date) })
	if len(recent) > dashboardRecentSales {
		recent = recent[:dashboardRecentSales]
	}
	recentDTOs := make([]dto.SaleResponse, 0, len(recent))
	for _, s := range recent {
		recentDTOs = append(recentDTOs, *appsales.ToSaleResponse(s))
	}

	lowStockDTOs := make([]dto.ProductResponse, 0, len(lowStock.products))
	for _, p := range lowStock.products {
		lowStockDTOs = append(lowStockDTOs, dto.ProductResponse{
			ID:                p.ID,
			Name:              p.Name,
			Price:             p.Price,
			Stock:             p.Stock,
			LowStockThreshold: p.LowStockThreshold,
			LowStock:          true,
			CreatedAt:         p.CreatedAt,
		})
	}

	return &dto.DashboardSummaryDTO{
		TodaySales:       todaySales.Round(2),
		MonthSales:       monthSales.Round(2),
		CustomerCount:    customers.n,
		LowStockCount:    len(lowStockDTOs),
		RecentSales:      recentDTOs,
		LowStockProducts: lowStockDTOs,
		DateLabel:        monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Septiembre 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
