package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
)

func TestInvoiceCreate_DefaultsYFechas(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc := usecase.NewInvoiceUseCase(repo)

	out, err := uc.Create(ownerA, dto.CreateInvoiceRequest{
		Type: "customer", Recipient: "Comercial XYZ",
		Amount: decPtr(decimal.NewFromInt(250)),
		Date:   "2025-04-01", DueDate: "2025-05-01",
	})
	require.NoError(t, err)

	stored := repo.items[out.ID]
	require.NotNil(t, stored)
	assert.Equal(t, ownerA, stored.OwnerID)
	assert.Equal(t, "pending", stored.Status, "status por defecto debe ser pending")
	// Las fechas vuelven en el mismo formato calendario en que entraron.
	assert.Equal(t, "2025-04-01", out.Date)
	assert.Equal(t, "2025-05-01", out.DueDate)
}

func TestInvoiceCreate_CamposRequeridos(t *testing.T) {
	uc := usecase.NewInvoiceUseCase(newFakeInvoiceRepo())

	amount := decPtr(decimal.NewFromInt(250))
	cases := []dto.CreateInvoiceRequest{
		{Recipient: "X", Amount: amount, Date: "2025-04-01", DueDate: "2025-05-01"},                    // sin type
		{Type: "customer", Amount: amount, Date: "2025-04-01", DueDate: "2025-05-01"},                  // sin recipient
		{Type: "customer", Recipient: "X", Date: "2025-04-01", DueDate: "2025-05-01"},                  // sin amount
		{Type: "customer", Recipient: "X", Amount: amount, DueDate: "2025-05-01"},                      // sin date
		{Type: "customer", Recipient: "X", Amount: amount, Date: "2025-04-01"},                         // sin dueDate
		{Type: "customer", Recipient: "X", Amount: amount, Date: "01/04/2025", DueDate: "2025-05-01"},  // fecha malformada
		{Type: "subscription", Recipient: "X", Amount: amount, Date: "2025-04-01", DueDate: "2025-05-01"}, // type inválido
	}
	for i, in := range cases {
		_, err := uc.Create(ownerA, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %d", i)
	}
}

func TestInvoiceUpdate_CambioDeStatus(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc := usecase.NewInvoiceUseCase(repo)

	created, err := uc.Create(ownerA, dto.CreateInvoiceRequest{
		Type: "customer", Recipient: "Comercial XYZ",
		Amount: decPtr(decimal.NewFromInt(250)),
		Date:   "2025-04-01", DueDate: "2025-05-01",
	})
	require.NoError(t, err)

	out, err := uc.Update(ownerA, created.ID, dto.UpdateInvoiceRequest{
		Status: strPtr("paid"),
	})
	require.NoError(t, err)

	assert.Equal(t, "paid", out.Status)
	assert.Equal(t, "Comercial XYZ", out.Recipient)
	assert.Equal(t, "2025-04-01", out.Date)
}

func TestInvoiceUpdate_StatusInvalido_RetornaErrInvalidInput(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc := usecase.NewInvoiceUseCase(repo)

	created, err := uc.Create(ownerA, dto.CreateInvoiceRequest{
		Type: "customer", Recipient: "Comercial XYZ",
		Amount: decPtr(decimal.NewFromInt(250)),
		Date:   "2025-04-01", DueDate: "2025-05-01",
	})
	require.NoError(t, err)

	_, err = uc.Update(ownerA, created.ID, dto.UpdateInvoiceRequest{Status: strPtr("cancelled")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvoiceUpdate_OtroPropietario_RetornaErrNotFound(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc := usecase.NewInvoiceUseCase(repo)

	created, err := uc.Create(ownerA, dto.CreateInvoiceRequest{
		Type: "customer", Recipient: "Comercial XYZ",
		Amount: decPtr(decimal.NewFromInt(250)),
		Date:   "2025-04-01", DueDate: "2025-05-01",
	})
	require.NoError(t, err)

	_, err = uc.Update(ownerB, created.ID, dto.UpdateInvoiceRequest{Status: strPtr("paid")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(ownerB, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
