package sales_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/sales"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/infrastructure/memory"
)

func seedSale(t *testing.T, repo *memory.SaleRepo, customerID int64, date time.Time, total int64) *entity.Sale {
	t.Helper()
	s := &entity.Sale{
		CustomerID: customerID,
		Items: []entity.SaleItem{
			{ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(total)},
		},
		Total: decimal.NewFromInt(total),
		Date:  date,
	}
	require.NoError(t, repo.Create(s))
	return s
}

// Reloj fijo: 1 de septiembre de 2026, 12:00 hora local.
var fixedNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

func newSaleUC(repo *memory.SaleRepo) *sales.SaleUseCase {
	return sales.NewSaleUseCase(repo, testLogger()).
		WithClock(func() time.Time { return fixedNow })
}

// Today devuelve exactamente las ventas cuya fecha cae en el día del reloj,
// sin importar la hora.
func TestSaleUseCase_Today_RelojFijo(t *testing.T) {
	repo := memory.NewSaleRepository()
	uc := newSaleUC(repo)

	madrugada := seedSale(t, repo, 1, fixedNow.Add(-11*time.Hour), 10) // 01:00 de hoy
	noche := seedSale(t, repo, 1, fixedNow.Add(11*time.Hour), 20)      // 23:00 de hoy
	seedSale(t, repo, 1, fixedNow.AddDate(0, 0, -1), 30)               // ayer
	seedSale(t, repo, 1, fixedNow.AddDate(0, 0, 1), 40)                // mañana

	list, err := uc.Today()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, madrugada.ID, list[0].ID)
	assert.Equal(t, noche.ID, list[1].ID)
}

// ThisMonth cubre del día 1 al último día del mes del reloj.
func TestSaleUseCase_ThisMonth_RelojFijo(t *testing.T) {
	repo := memory.NewSaleRepository()
	uc := newSaleUC(repo)

	dia1 := seedSale(t, repo, 1, time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local), 10)
	dia30 := seedSale(t, repo, 1, time.Date(2026, 9, 30, 23, 59, 59, 0, time.Local), 20)
	seedSale(t, repo, 1, time.Date(2026, 8, 31, 23, 59, 59, 0, time.Local), 30) // agosto
	seedSale(t, repo, 1, time.Date(2026, 10, 1, 0, 0, 0, 0, time.Local), 40)    // octubre

	list, err := uc.ThisMonth()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, dia1.ID, list[0].ID)
	assert.Equal(t, dia30.ID, list[1].ID)
}

func TestSaleUseCase_ByCustomer(t *testing.T) {
	repo := memory.NewSaleRepository()
	uc := newSaleUC(repo)

	seedSale(t, repo, 1, fixedNow, 10)
	seedSale(t, repo, 2, fixedNow, 20)
	seedSale(t, repo, 1, fixedNow, 30)

	list, err := uc.ByCustomer(1)
	require.NoError(t, err)
	require.Len(t, list, 2)

	vacia, err := uc.ByCustomer(999)
	require.NoError(t, err)
	assert.Empty(t, vacia, "un cliente sin ventas devuelve lista vacía, no error")
}

func TestSaleUseCase_GetByID_NoExistente(t *testing.T) {
	uc := newSaleUC(memory.NewSaleRepository())

	got, err := uc.GetByID(999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Delete borra solo el registro de la venta; no hay compensación de stock
// ni de acumulado (eso lo verifican los tests del flujo de creación).
func TestSaleUseCase_Delete(t *testing.T) {
	repo := memory.NewSaleRepository()
	uc := newSaleUC(repo)
	s := seedSale(t, repo, 1, fixedNow, 10)

	require.NoError(t, uc.Delete(s.ID))
	assert.ErrorIs(t, uc.Delete(s.ID), domain.ErrNotFound)
}
