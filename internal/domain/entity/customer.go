package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente del CRM.
// TotalPurchases es el acumulado histórico de compras; solo lo modifica el
// flujo de venta (nunca el formulario de edición) y no baja de 0.
type Customer struct {
	ID             int64
	Name           string
	Email          string
	Phone          string
	Notes          string
	TotalPurchases decimal.Decimal
	CreatedAt      time.Time
}
