package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
)

func TestEmployeeCreate_SinStatusNiRol_QuedanNil(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := usecase.NewEmployeeUseCase(repo)

	out, err := uc.Create(ownerA, dto.CreateEmployeeRequest{
		Name: "Luis", Email: "luis@example.com",
	})
	require.NoError(t, err)

	stored := repo.items[out.ID]
	require.NotNil(t, stored)
	assert.Equal(t, ownerA, stored.OwnerID)
	// Sin asignar: no cuentan en ninguna estadística del dashboard.
	assert.Nil(t, stored.Status)
	assert.Nil(t, stored.Role)
}

func TestEmployeeCreate_CamposRequeridos(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newFakeEmployeeRepo())

	_, err := uc.Create(ownerA, dto.CreateEmployeeRequest{Email: "luis@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "name es obligatorio")

	_, err = uc.Create(ownerA, dto.CreateEmployeeRequest{Name: "Luis"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "email es obligatorio")
}

func TestEmployeeCreate_RolInvalido_RetornaErrInvalidInput(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newFakeEmployeeRepo())

	_, err := uc.Create(ownerA, dto.CreateEmployeeRequest{
		Name: "Luis", Email: "luis@example.com", Role: strPtr("superuser"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeUpdate_AsignaRolSinTocarOtrosCampos(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := usecase.NewEmployeeUseCase(repo)

	created, err := uc.Create(ownerA, dto.CreateEmployeeRequest{
		Name: "Luis", Email: "luis@example.com", Position: "Ventas",
	})
	require.NoError(t, err)

	out, err := uc.Update(ownerA, created.ID, dto.UpdateEmployeeRequest{
		Role:   strPtr("manager"),
		Status: strPtr("active"),
	})
	require.NoError(t, err)

	require.NotNil(t, out.Role)
	assert.Equal(t, "manager", *out.Role)
	require.NotNil(t, out.Status)
	assert.Equal(t, "active", *out.Status)
	assert.Equal(t, "Ventas", out.Position)
}

func TestEmployeeUpdate_OtroPropietario_RetornaErrNotFound(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := usecase.NewEmployeeUseCase(repo)

	created, err := uc.Create(ownerA, dto.CreateEmployeeRequest{Name: "Luis", Email: "luis@example.com"})
	require.NoError(t, err)

	_, err = uc.Update(ownerB, created.ID, dto.UpdateEmployeeRequest{Name: strPtr("Hackeado")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmployeeDelete(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := usecase.NewEmployeeUseCase(repo)

	created, err := uc.Create(ownerA, dto.CreateEmployeeRequest{Name: "Luis", Email: "luis@example.com"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(ownerA, "id-inexistente"), domain.ErrNotFound)
	require.NoError(t, uc.Delete(ownerA, created.ID))
	assert.ErrorIs(t, uc.Delete(ownerA, created.ID), domain.ErrNotFound, "segundo delete debe fallar")
}
