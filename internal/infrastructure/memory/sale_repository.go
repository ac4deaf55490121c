package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo repositorio de ventas en memoria. Las líneas viajan embebidas
// en la entidad, así que no hay colección aparte.
type SaleRepo struct {
	mu     sync.RWMutex
	items  map[int64]*entity.Sale
	lastID int64
}

// NewSaleRepository construye el repositorio vacío.
func NewSaleRepository() *SaleRepo {
	return &SaleRepo{items: make(map[int64]*entity.Sale)}
}

// Create asigna el siguiente ID y guarda una copia de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	sale.ID = r.lastID
	r.items[sale.ID] = copySale(sale)
	return nil
}

// GetByID devuelve una copia de la venta o (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id int64) (*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return copySale(s), nil
}

// List devuelve todas las ventas ordenadas por ID.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(*entity.Sale) bool { return true }), nil
}

// ListByCustomer devuelve las ventas del cliente indicado.
func (r *SaleRepo) ListByCustomer(customerID int64) ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(s *entity.Sale) bool { return s.CustomerID == customerID }), nil
}

// ListByDateRange devuelve las ventas con from <= date < to.
func (r *SaleRepo) ListByDateRange(from, to time.Time) ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(s *entity.Sale) bool {
		return !s.Date.Before(from) && s.Date.Before(to)
	}), nil
}

// Delete elimina la venta. Devuelve domain.ErrNotFound si no existe.
func (r *SaleRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// collect filtra bajo el lock del llamador y devuelve copias ordenadas por ID.
func (r *SaleRepo) collect(keep func(*entity.Sale) bool) []*entity.Sale {
	var list []*entity.Sale
	for _, s := range r.items {
		if keep(s) {
			list = append(list, copySale(s))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func copySale(s *entity.Sale) *entity.Sale {
	cp := *s
	cp.Items = make([]entity.SaleItem, len(s.Items))
	copy(cp.Items, s.Items)
	return &cp
}
