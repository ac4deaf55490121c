package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
// TotalPurchases se maneja vía AddPurchase; Create lo inicia en 0 y Update
// no lo toca.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuevo cliente. El ID lo asigna el repositorio.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Notes:          in.Notes,
		TotalPurchases: decimal.Zero,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (uc *CustomerUseCase) GetByID(id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// List lista todos los clientes.
func (uc *CustomerUseCase) List() ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// Update actualiza los campos editables de un cliente.
func (uc *CustomerUseCase) Update(id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Name = *in.Name
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Notes != nil {
		customer.Notes = *in.Notes
	}
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *CustomerUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// AddPurchase suma amount al acumulado de compras del cliente.
func (uc *CustomerUseCase) AddPurchase(id int64, amount decimal.Decimal) error {
	return uc.repo.AddToTotalPurchases(id, amount)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Notes:          c.Notes,
		TotalPurchases: c.TotalPurchases,
		CreatedAt:      c.CreatedAt,
	}
}
