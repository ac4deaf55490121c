package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock nunca es negativo: los descuentos por venta se recortan en 0.
// LowStockThreshold marca el nivel a partir del cual (inclusive) el producto
// aparece como "por reabastecer".
type Product struct {
	ID                int64
	Name              string
	Price             decimal.Decimal // precio de venta unitario
	Stock             int
	LowStockThreshold int
	CreatedAt         time.Time
}

// IsLowStock indica si el producto está en o por debajo de su umbral de
// reabastecimiento. Stock 0 también cuenta como bajo.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.LowStockThreshold
}
