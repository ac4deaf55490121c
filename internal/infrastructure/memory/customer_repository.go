// Package memory implementa los repositorios sobre mapas en memoria.
// Es el modo demo/por defecto: los datos viven en el proceso y se pierden
// al reiniciar. Los mapas van protegidos por mutex y los IDs se asignan
// con un contador high-water, así un Create siempre devuelve un ID
// estrictamente mayor que cualquiera asignado antes, incluso tras borrados.
package memory

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo repositorio de clientes en memoria.
type CustomerRepo struct {
	mu     sync.RWMutex
	items  map[int64]*entity.Customer
	lastID int64
}

// NewCustomerRepository construye el repositorio vacío.
func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{items: make(map[int64]*entity.Customer)}
}

// Create asigna el siguiente ID y guarda una copia del cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	customer.ID = r.lastID
	c := *customer
	r.items[c.ID] = &c
	return nil
}

// GetByID devuelve una copia del cliente o (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

// List devuelve todos los clientes ordenados por ID.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Customer, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Update reemplaza el cliente. Devuelve domain.ErrNotFound si no existe.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[customer.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *customer
	r.items[c.ID] = &c
	return nil
}

// Delete elimina el cliente. Devuelve domain.ErrNotFound si no existe.
func (r *CustomerRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// AddToTotalPurchases suma amount al acumulado bajo el lock del repositorio,
// así dos ventas concurrentes no se pisan la actualización.
func (r *CustomerRepo) AddToTotalPurchases(id int64, amount decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.TotalPurchases = c.TotalPurchases.Add(amount)
	return nil
}

// Count devuelve el número de clientes.
func (r *CustomerRepo) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}
