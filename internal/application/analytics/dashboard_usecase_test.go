package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/analytics"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/infrastructure/memory"
)

// Reloj fijo: 15 de septiembre de 2026, mediodía hora local.
var fixedNow = time.Date(2026, 9, 15, 12, 0, 0, 0, time.Local)

type dashFixture struct {
	sales     *memory.SaleRepo
	customers *memory.CustomerRepo
	products  *memory.ProductRepo
	uc        *analytics.DashboardUseCase
}

func newDashFixture() *dashFixture {
	f := &dashFixture{
		sales:     memory.NewSaleRepository(),
		customers: memory.NewCustomerRepository(),
		products:  memory.NewProductRepository(),
	}
	f.uc = analytics.NewDashboardUseCase(f.sales, f.customers, f.products).
		WithClock(func() time.Time { return fixedNow })
	return f
}

func (f *dashFixture) seedSale(t *testing.T, date time.Time, total int64) {
	t.Helper()
	require.NoError(t, f.sales.Create(&entity.Sale{
		CustomerID: 1,
		Items:      []entity.SaleItem{{ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(total)}},
		Total:      decimal.NewFromInt(total),
		Date:       date,
	}))
}

func TestDashboard_TotalesDelDiaYDelMes(t *testing.T) {
	f := newDashFixture()

	f.seedSale(t, fixedNow.Add(-2*time.Hour), 10)                      // hoy
	f.seedSale(t, fixedNow.Add(time.Hour), 15)                         // hoy
	f.seedSale(t, time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local), 100)  // este mes
	f.seedSale(t, time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local), 999) // mes pasado

	summary, err := f.uc.GetSummary()
	require.NoError(t, err)

	assert.True(t, summary.TodaySales.Equal(decimal.NewFromInt(25)),
		"ventas de hoy esperadas 25, obtenidas %s", summary.TodaySales)
	assert.True(t, summary.MonthSales.Equal(decimal.NewFromInt(125)),
		"ventas del mes esperadas 125, obtenidas %s", summary.MonthSales)
	assert.Equal(t, "Septiembre 2026", summary.DateLabel)
}

func TestDashboard_ConteosDeClientesYBajoStock(t *testing.T) {
	f := newDashFixture()

	require.NoError(t, f.customers.Create(&entity.Customer{Name: "Ana"}))
	require.NoError(t, f.customers.Create(&entity.Customer{Name: "Bruno"}))
	require.NoError(t, f.products.Create(&entity.Product{
		Name: "Agotado", Price: decimal.NewFromInt(10), Stock: 0, LowStockThreshold: 2,
	}))
	require.NoError(t, f.products.Create(&entity.Product{
		Name: "Sobrado", Price: decimal.NewFromInt(10), Stock: 50, LowStockThreshold: 2,
	}))

	summary, err := f.uc.GetSummary()
	require.NoError(t, err)

	assert.Equal(t, 2, summary.CustomerCount)
	assert.Equal(t, 1, summary.LowStockCount)
	require.Len(t, summary.LowStockProducts, 1)
	assert.Equal(t, "Agotado", summary.LowStockProducts[0].Name)
	assert.True(t, summary.LowStockProducts[0].LowStock)
}

// RecentSales: máximo 10 ventas, de la más reciente a la más antigua.
func TestDashboard_VentasRecientesOrdenadasYAcotadas(t *testing.T) {
	f := newDashFixture()

	for i := 0; i < 12; i++ {
		f.seedSale(t, fixedNow.Add(-time.Duration(i)*time.Hour), int64(i+1))
	}

	summary, err := f.uc.GetSummary()
	require.NoError(t, err)

	require.Len(t, summary.RecentSales, 10)
	for i := 1; i < len(summary.RecentSales); i++ {
		assert.False(t, summary.RecentSales[i].Date.After(summary.RecentSales[i-1].Date),
			"las ventas recientes deben venir en fecha descendente")
	}
}

func TestDashboard_SinDatos(t *testing.T) {
	f := newDashFixture()

	summary, err := f.uc.GetSummary()
	require.NoError(t, err)

	assert.True(t, summary.TodaySales.IsZero())
	assert.True(t, summary.MonthSales.IsZero())
	assert.Equal(t, 0, summary.CustomerCount)
	assert.Equal(t, 0, summary.LowStockCount)
	assert.Empty(t, summary.RecentSales)
	assert.Empty(t, summary.LowStockProducts)
}
