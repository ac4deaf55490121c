package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta.
// El total se recalcula en el servidor como Σ price × quantity; el valor que
// envíe el cliente no se persiste.
type CreateSaleRequest struct {
	CustomerID int64             `json:"customer_id" validate:"required"`
	Items      []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleItemRequest una línea de la venta. Price es el precio unitario
// capturado en el momento de la venta; si viene ausente (nil) se toma el
// precio vigente del producto. Un 0 explícito es válido (línea de regalo);
// un precio negativo se rechaza.
type SaleItemRequest struct {
	ProductID int64            `json:"product_id" validate:"required"`
	Quantity  int              `json:"quantity" validate:"required,min=1"`
	Price     *decimal.Decimal `json:"price"`
}

// SaleItemResponse una línea de venta persistida.
type SaleItemResponse struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID         int64              `json:"id"`
	CustomerID int64              `json:"customer_id"`
	Items      []SaleItemResponse `json:"items"`
	Total      decimal.Decimal    `json:"total"`
	Date       time.Time          `json:"date"`
}
