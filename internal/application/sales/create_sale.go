package sales

import (
	"fmt"
	"time"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// CreateSaleUseCase registra una venta y ejecuta la contabilidad posterior:
// descuento de stock por línea y acumulado de compras del cliente.
//
// El flujo NO es transaccional: la venta se confirma primero y los ajustes
// de stock/acumulado son best-effort. Un fallo en esos pasos deja la venta
// registrada y se reporta solo por log (warn), nunca al llamador.
type CreateSaleUseCase struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	log          *logger.Logger

	now func() time.Time // inyectable en tests
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	log *logger.Logger,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		log:          log,
		now:          time.Now,
	}
}

// WithClock reemplaza el reloj del caso de uso. Para tests.
func (uc *CreateSaleUseCase) WithClock(now func() time.Time) *CreateSaleUseCase {
	uc.now = now
	return uc
}

// Create registra la venta.
//
// Pasos, en orden estricto:
//  1. Validar cliente, productos y cantidades.
//  2. Persistir la venta con sus líneas embebidas, fecha = ahora y
//     total = Σ price × quantity (recalculado en el servidor).
//  3. Por cada línea, descontar stock con piso en 0 (best-effort).
//  4. Sumar el total al acumulado del cliente (best-effort).
//
// Devuelve la venta tal como se construyó, sin releerla del repositorio.
func (uc *CreateSaleUseCase) Create(in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("verificar cliente: %w", err)
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	items := make([]entity.SaleItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, fmt.Errorf("verificar producto %d: %w", it.ProductID, err)
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		// Sin precio en la línea se captura el vigente del producto; un 0
		// explícito es válido (regalo). Negativos nunca: corromperían el
		// total y el acumulado del cliente.
		price := product.Price
		if it.Price != nil {
			if it.Price.IsNegative() {
				return nil, domain.ErrInvalidInput
			}
			price = *it.Price
		}
		items = append(items, entity.SaleItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     price,
		})
	}

	sale := &entity.Sale{
		CustomerID: in.CustomerID,
		Items:      items,
		Date:       uc.now(),
	}
	sale.Total = sale.ItemsTotal()

	if err := uc.saleRepo.Create(sale); err != nil {
		return nil, fmt.Errorf("guardar venta: %w", err)
	}

	// La venta ya está confirmada: los ajustes siguientes no la deshacen.
	for _, it := range sale.Items {
		if _, err := uc.productRepo.AdjustStock(it.ProductID, it.Quantity); err != nil {
			uc.log.Warn().
				Int64("sale_id", sale.ID).
				Int64("product_id", it.ProductID).
				Int("quantity", it.Quantity).
				Err(err).
				Msg("venta registrada pero falló el descuento de stock")
		}
	}
	if err := uc.customerRepo.AddToTotalPurchases(sale.CustomerID, sale.Total); err != nil {
		uc.log.Warn().
			Int64("sale_id", sale.ID).
			Int64("customer_id", sale.CustomerID).
			Str("total", sale.Total.String()).
			Err(err).
			Msg("venta registrada pero falló el acumulado de compras del cliente")
	}

	uc.log.Info().
		Int64("sale_id", sale.ID).
		Int64("customer_id", sale.CustomerID).
		Int("items", len(sale.Items)).
		Str("total", sale.Total.String()).
		Msg("venta registrada")

	return ToSaleResponse(sale), nil
}

// ToSaleResponse mapea la entidad al DTO de salida.
func ToSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Subtotal:  it.Price.Mul(decimalFromInt(it.Quantity)),
		})
	}
	return &dto.SaleResponse{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		Items:      items,
		Total:      s.Total,
		Date:       s.Date,
	}
}
