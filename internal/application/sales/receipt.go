package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// ReceiptUseCase arma el recibo PDF de una venta: reúne venta, cliente y
// productos referenciados y delega el render en el ReceiptGenerator.
type ReceiptUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	generator    ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// Generate devuelve los bytes del PDF del recibo de la venta indicada.
// Si un producto de una línea ya no existe, la línea sale sin nombre
// (el recibo no falla por catálogo incompleto).
func (uc *ReceiptUseCase) Generate(ctx context.Context, saleID int64) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, fmt.Errorf("leer venta: %w", err)
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	customer, err := uc.customerRepo.GetByID(sale.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("leer cliente: %w", err)
	}

	products := make(map[int64]*entity.Product, len(sale.Items))
	for _, it := range sale.Items {
		if _, ok := products[it.ProductID]; ok {
			continue
		}
		p, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, fmt.Errorf("leer producto %d: %w", it.ProductID, err)
		}
		if p != nil {
			products[it.ProductID] = p
		}
	}

	return uc.generator.GenerateSaleReceipt(ctx, sale, customer, products)
}
