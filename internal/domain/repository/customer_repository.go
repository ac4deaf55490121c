package repository

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (DIP).
// GetByID devuelve (nil, nil) cuando el cliente no existe; Delete y
// AddToTotalPurchases devuelven domain.ErrNotFound en ese caso.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id int64) error
	// AddToTotalPurchases suma amount al acumulado del cliente de forma
	// atómica (sin read-modify-write en el llamador).
	AddToTotalPurchases(id int64, amount decimal.Decimal) error
	Count() (int, error)
}
