package sales

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// ReceiptGenerator genera la representación PDF de una venta.
// Implementado en infrastructure/pdf con Maroto.
type ReceiptGenerator interface {
	GenerateSaleReceipt(ctx context.Context, sale *entity.Sale, customer *entity.Customer, products map[int64]*entity.Product) ([]byte, error)
}
