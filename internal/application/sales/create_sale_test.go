package sales_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/sales"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/internal/infrastructure/memory"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// precio construye el puntero que lleva la línea de venta.
func precio(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

type fixture struct {
	customers *memory.CustomerRepo
	products  *memory.ProductRepo
	sales     *memory.SaleRepo
	uc        *sales.CreateSaleUseCase
}

// newFixture deja un cliente (ID 1) y un producto (ID 1, precio 10, stock 5,
// umbral 2) listos para vender.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		customers: memory.NewCustomerRepository(),
		products:  memory.NewProductRepository(),
		sales:     memory.NewSaleRepository(),
	}
	require.NoError(t, f.customers.Create(&entity.Customer{
		Name:           "Ana",
		TotalPurchases: decimal.Zero,
	}))
	require.NoError(t, f.products.Create(&entity.Product{
		Name:              "Teclado",
		Price:             decimal.NewFromInt(10),
		Stock:             5,
		LowStockThreshold: 2,
	}))
	f.uc = sales.NewCreateSaleUseCase(f.sales, f.products, f.customers, testLogger())
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo feliz
// ──────────────────────────────────────────────────────────────────────────────

// Vender 2 unidades de un producto con stock 5 a precio 10:
// stock final 3, acumulado del cliente +20, total de la venta 20.
func TestCreateSale_DescuentaStockYAcumulaCompras(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Create(dto.CreateSaleRequest{
		CustomerID: 1,
		Items: []dto.SaleItemRequest{
			{ProductID: 1, Quantity: 2, Price: precio(10)},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.Total.Equal(decimal.NewFromInt(20)),
		"total esperado 20, obtenido %s", out.Total)
	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].Subtotal.Equal(decimal.NewFromInt(20)))

	product, err := f.products.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 3, product.Stock, "stock 5 - 2 vendidas = 3")

	customer, err := f.customers.GetByID(1)
	require.NoError(t, err)
	assert.True(t, customer.TotalPurchases.Equal(decimal.NewFromInt(20)),
		"acumulado esperado 20, obtenido %s", customer.TotalPurchases)
}

// El total siempre se recalcula en el servidor como Σ price × quantity.
func TestCreateSale_TotalRecalculadoPorLinea(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.products.Create(&entity.Product{
		Name:  "Mouse",
		Price: decimal.NewFromFloat(7.50),
		Stock: 10,
	}))

	out, err := f.uc.Create(dto.CreateSaleRequest{
		CustomerID: 1,
		Items: []dto.SaleItemRequest{
			{ProductID: 1, Quantity: 3, Price: precio(10)},
			{ProductID: 2, Quantity: 2, Price: precio(7.50)},
		},
	})
	require.NoError(t, err)

	// 3×10 + 2×7.50 = 45
	assert.True(t, out.Total.Equal(decimal.NewFromInt(45)),
		"total esperado 45, obtenido %s", out.Total)
}

// Si la línea no trae precio se captura el precio vigente del producto.
func TestCreateSale_PrecioPorDefectoDelProducto(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Create(dto.CreateSaleRequest{
		CustomerID: 1,
		Items:      []dto.SaleItemRequest{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.True(t, out.Items[0].Price.Equal(decimal.NewFromInt(10)))
}

// Un precio 0 explícito es una línea de regalo: se respeta, no se sustituye
// por el precio del producto.
func TestCreateSale_PrecioCeroExplicito(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Create(dto.CreateSaleRequest{
		CustomerID: 1,
		Items:      []dto.SaleItemRequest{{ProductID: 1, Quantity: 2, Price: precio(0)}},
	})
	require.NoError(t, err)
	assert.True(t, out.Total.IsZero(), "total esperado 0, obtenido %s", out.Total)

	product, err := f.products.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 3, product.Stock, "el regalo también descuenta stock")
}

// La fecha de la venta sale del reloj inyectado.
func TestCreateSale_FechaDelReloj(t *testing.T) {
	f := newFixture(t)
	fixed := time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC)
	f.uc.WithClock(func() time.Time { return fixed })

	out, err := f.uc.Create(dto.CreateSaleRequest{
		CustomerID: 1,
		Items:      []dto.SaleItemRequest{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.True(t, out.Date.Equal(fixed))
}

// Vender más que el stock disponible no falla: el stock queda en 0.
func TestCreateSale_StockInsuficiente_QuedaEnCero(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(dto.CreateSaleRequest{
		CustomerID: 1,
		Items:      []dto.SaleItemRequest{{ProductID: 1, Quantity: 50, Price: precio(10)}},
	})
	require.NoError(t, err)

	product, err := f.products.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 0, product.Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_SinLineas(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(dto.CreateSaleRequest{CustomerID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un precio negativo se rechaza de plano: si pasara, el total saldría
// negativo y arrastraría el acumulado del cliente por debajo de 0.
func TestCreateSale_PrecioNegativo(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(dto.CreateSaleRequest{
		CustomerID: 1,
		Items:      []dto.SaleItemRequest{{ProductID: 1, Quantity: 2, Price: precio(-10)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, lerr := f.sales.List()
	require.NoError(t, lerr)
	assert.Empty(t, list, "la venta rechazada no se persiste")

	customer, cerr := f.customers.GetByID(1)
	require.NoError(t, cerr)
	assert.True(t, customer.TotalPurchases.IsZero(),
		"el acumulado del cliente no puede bajar de 0")

	product, perr := f.products.GetByID(1)
	require.NoError(t, perr)
	assert.Equal(t, 5, product.Stock, "el stock queda intacto")
}

func TestCreateSale_CantidadInvalida(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(dto.CreateSaleRequest{
		CustomerID: 1,
		Items:      []dto.SaleItemRequest{{ProductID: 1, Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_ClienteNoExistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(dto.CreateSaleRequest{
		CustomerID: 999,
		Items:      []dto.SaleItemRequest{{ProductID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, lerr := f.sales.List()
	require.NoError(t, lerr)
	assert.Empty(t, list, "una venta rechazada no se persiste")
}

func TestCreateSale_ProductoNoExistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(dto.CreateSaleRequest{
		CustomerID: 1,
		Items:      []dto.SaleItemRequest{{ProductID: 999, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Contabilidad posterior best-effort
// ──────────────────────────────────────────────────────────────────────────────

// Repos que fallan en los pasos posteriores al alta de la venta.
type stockFallaRepo struct {
	repository.ProductRepository
}

func (r *stockFallaRepo) AdjustStock(int64, int) (*entity.Product, error) {
	return nil, errors.New("tabla de productos bloqueada")
}

type acumuladoFallaRepo struct {
	repository.CustomerRepository
}

func (r *acumuladoFallaRepo) AddToTotalPurchases(int64, decimal.Decimal) error {
	return errors.New("tabla de clientes bloqueada")
}

// Un fallo al descontar stock no deshace la venta ni llega al llamador.
func TestCreateSale_FalloDeStockNoPropaga(t *testing.T) {
	f := newFixture(t)
	uc := sales.NewCreateSaleUseCase(
		f.sales, &stockFallaRepo{ProductRepository: f.products}, f.customers, testLogger(),
	)

	out, err := uc.Create(dto.CreateSaleRequest{
		CustomerID: 1,
		Items:      []dto.SaleItemRequest{{ProductID: 1, Quantity: 2, Price: precio(10)}},
	})
	require.NoError(t, err, "la venta ya está confirmada; el ajuste es best-effort")
	require.NotNil(t, out)

	persisted, err := f.sales.GetByID(out.ID)
	require.NoError(t, err)
	assert.NotNil(t, persisted, "la venta queda registrada aunque el stock no se descuente")

	product, err := f.products.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 5, product.Stock, "el stock queda intacto cuando el ajuste falla")
}

// Un fallo al acumular compras del cliente tampoco llega al llamador.
func TestCreateSale_FalloDeAcumuladoNoPropaga(t *testing.T) {
	f := newFixture(t)
	uc := sales.NewCreateSaleUseCase(
		f.sales, f.products, &acumuladoFallaRepo{CustomerRepository: f.customers}, testLogger(),
	)

	out, err := uc.Create(dto.CreateSaleRequest{
		CustomerID: 1,
		Items:      []dto.SaleItemRequest{{ProductID: 1, Quantity: 1, Price: precio(10)}},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	customer, err := f.customers.GetByID(1)
	require.NoError(t, err)
	assert.True(t, customer.TotalPurchases.IsZero(),
		"el acumulado queda como estaba cuando la suma falla")
}
