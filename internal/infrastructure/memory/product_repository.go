package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo repositorio de productos en memoria.
type ProductRepo struct {
	mu     sync.RWMutex
	items  map[int64]*entity.Product
	lastID int64
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{items: make(map[int64]*entity.Product)}
}

// Create asigna el siguiente ID y guarda una copia del producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	product.ID = r.lastID
	p := *product
	r.items[p.ID] = &p
	return nil
}

// GetByID devuelve una copia del producto o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// List devuelve todos los productos ordenados por ID.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Update reemplaza el producto. Devuelve domain.ErrNotFound si no existe.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[product.ID]; !ok {
		return domain.ErrNotFound
	}
	p := *product
	r.items[p.ID] = &p
	return nil
}

// Delete elimina el producto. Devuelve domain.ErrNotFound si no existe.
func (r *ProductRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// AdjustStock descuenta delta unidades con piso en 0, bajo el lock del
// repositorio. Nunca devuelve stock negativo.
func (r *ProductRepo) AdjustStock(id int64, delta int) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Stock -= delta
	if p.Stock < 0 {
		p.Stock = 0
	}
	cp := *p
	return &cp, nil
}

// ListLowStock devuelve los productos con stock <= low_stock_threshold.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Product
	for _, p := range r.items {
		if p.IsLowStock() {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
