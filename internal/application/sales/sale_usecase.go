package sales

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// SaleUseCase consultas y borrado de ventas.
//
// Today y ThisMonth usan rangos semiabiertos en hora local del servidor;
// el reloj es inyectable para poder fijarlo en tests.
type SaleUseCase struct {
	repo repository.SaleRepository
	log  *logger.Logger

	now func() time.Time
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, log *logger.Logger) *SaleUseCase {
	return &SaleUseCase{repo: repo, log: log, now: time.Now}
}

// WithClock reemplaza el reloj del caso de uso. Para tests.
func (uc *SaleUseCase) WithClock(now func() time.Time) *SaleUseCase {
	uc.now = now
	return uc
}

// List lista todas las ventas.
func (uc *SaleUseCase) List() ([]dto.SaleResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toSaleResponses(list), nil
}

// GetByID obtiene una venta por ID. Devuelve (nil, nil) si no existe.
func (uc *SaleUseCase) GetByID(id int64) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return ToSaleResponse(sale), nil
}

// ByCustomer lista las ventas de un cliente.
func (uc *SaleUseCase) ByCustomer(customerID int64) ([]dto.SaleResponse, error) {
	list, err := uc.repo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(list), nil
}

// Today lista las ventas del día actual (00:00 hasta mañana 00:00, hora local).
func (uc *SaleUseCase) Today() ([]dto.SaleResponse, error) {
	now := uc.now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	list, err := uc.repo.ListByDateRange(from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	return toSaleResponses(list), nil
}

// ThisMonth lista las ventas del mes en curso (día 1 hasta el 1 del mes siguiente).
func (uc *SaleUseCase) ThisMonth() ([]dto.SaleResponse, error) {
	now := uc.now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	list, err := uc.repo.ListByDateRange(from, from.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	return toSaleResponses(list), nil
}

// Delete elimina una venta. No hay compensación: el stock descontado y el
// acumulado del cliente quedan como estaban (comportamiento heredado del
// sistema original; se deja traza en el log).
func (uc *SaleUseCase) Delete(id int64) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.log.Warn().
		Int64("sale_id", id).
		Msg("venta eliminada sin revertir stock ni acumulado del cliente")
	return nil
}

func toSaleResponses(list []*entity.Sale) []dto.SaleResponse {
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *ToSaleResponse(s))
	}
	return out
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
