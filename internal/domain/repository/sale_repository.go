package repository

import (
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
// Las líneas de venta viajan embebidas en la entidad; el adaptador decide
// cómo almacenarlas (columnas propias, tabla hija, etc.).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id int64) (*entity.Sale, error)
	List() ([]*entity.Sale, error)
	ListByCustomer(customerID int64) ([]*entity.Sale, error)
	// ListByDateRange devuelve las ventas con from <= date < to.
	ListByDateRange(from, to time.Time) ([]*entity.Sale, error)
	Delete(id int64) error
}
