package repository

import "github.com/jhoicas/crm-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
	// AdjustStock descuenta delta unidades de forma atómica con piso en 0:
	// nuevo stock = max(0, stock - delta). Devuelve el producto actualizado.
	AdjustStock(id int64, delta int) (*entity.Product, error)
	// ListLowStock devuelve los productos con stock <= low_stock_threshold.
	ListLowStock() ([]*entity.Product, error)
}
