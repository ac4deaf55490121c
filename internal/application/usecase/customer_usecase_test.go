package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/infrastructure/memory"
)

func str(s string) *string { return &s }

func TestCustomerUseCase_Create(t *testing.T) {
	uc := usecase.NewCustomerUseCase(memory.NewCustomerRepository())

	out, err := uc.Create(dto.CreateCustomerRequest{
		Name:  "Ana",
		Email: "ana@example.com",
		Phone: "3001234567",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "Ana", out.Name)
	assert.True(t, out.TotalPurchases.IsZero(), "un cliente nuevo arranca con acumulado 0")
	assert.False(t, out.CreatedAt.IsZero())
}

func TestCustomerUseCase_Create_NombreRequerido(t *testing.T) {
	uc := usecase.NewCustomerUseCase(memory.NewCustomerRepository())

	_, err := uc.Create(dto.CreateCustomerRequest{Email: "sin-nombre@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerUseCase_GetByID_NoExistente(t *testing.T) {
	uc := usecase.NewCustomerUseCase(memory.NewCustomerRepository())

	out, err := uc.GetByID(999)
	require.NoError(t, err)
	assert.Nil(t, out)
}

// Update solo toca los campos presentes en la petición.
func TestCustomerUseCase_Update_Parcial(t *testing.T) {
	repo := memory.NewCustomerRepository()
	uc := usecase.NewCustomerUseCase(repo)
	created, err := uc.Create(dto.CreateCustomerRequest{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateCustomerRequest{Phone: str("3009999999")})
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.Name, "name no venía en la petición y no cambia")
	assert.Equal(t, "ana@example.com", out.Email)
	assert.Equal(t, "3009999999", out.Phone)
}

// El acumulado de compras no es editable por Update: solo lo mueve el
// flujo de venta (AddPurchase).
func TestCustomerUseCase_Update_NoTocaAcumulado(t *testing.T) {
	repo := memory.NewCustomerRepository()
	uc := usecase.NewCustomerUseCase(repo)
	created, err := uc.Create(dto.CreateCustomerRequest{Name: "Ana"})
	require.NoError(t, err)
	require.NoError(t, uc.AddPurchase(created.ID, decimal.NewFromInt(100)))

	out, err := uc.Update(created.ID, dto.UpdateCustomerRequest{Name: str("Ana María")})
	require.NoError(t, err)
	assert.True(t, out.TotalPurchases.Equal(decimal.NewFromInt(100)))
}

func TestCustomerUseCase_Update_NombreVacio(t *testing.T) {
	uc := usecase.NewCustomerUseCase(memory.NewCustomerRepository())
	created, err := uc.Create(dto.CreateCustomerRequest{Name: "Ana"})
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateCustomerRequest{Name: str("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerUseCase_Update_NoExistente(t *testing.T) {
	uc := usecase.NewCustomerUseCase(memory.NewCustomerRepository())

	out, err := uc.Update(999, dto.UpdateCustomerRequest{Name: str("Nadie")})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestCustomerUseCase_Delete_NoExistente(t *testing.T) {
	uc := usecase.NewCustomerUseCase(memory.NewCustomerRepository())
	assert.ErrorIs(t, uc.Delete(999), domain.ErrNotFound)
}
