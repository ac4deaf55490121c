package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada. Es inmutable después de creada:
// no hay edición, solo borrado explícito.
type Sale struct {
	ID         int64
	CustomerID int64
	Items      []SaleItem // orden de captura
	Total      decimal.Decimal
	Date       time.Time
}

// SaleItem es una línea de venta. Price es el precio unitario capturado al
// momento de la venta, desacoplado del precio vigente del producto.
type SaleItem struct {
	ProductID int64
	Quantity  int
	Price     decimal.Decimal
}

// ItemsTotal suma price × quantity de todas las líneas.
func (s *Sale) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
