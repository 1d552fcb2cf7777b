package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/auth"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// fakeUserRepo repositorio en memoria para los tests de auth.
// Replica el contrato del adaptador de Postgres: Create devuelve
// ErrEmailAlreadyExists en duplicado, los Find devuelven (nil, nil) en miss.
type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]*entity.User{},
		byEmail: map[string]*entity.User{},
	}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*entity.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func newTestUseCase() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "gestion-pro-test",
	})
	return uc, repo
}

func TestRegister_CreaUsuarioYHasheaPassword(t *testing.T) {
	uc, repo := newTestUseCase()

	out, err := uc.Register(dto.RegisterRequest{
		Name: "Ana", Email: "ana@example.com", Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.User.Name)
	assert.Equal(t, "ana@example.com", out.User.Email)

	stored := repo.byEmail["ana@example.com"]
	require.NotNil(t, stored)
	// El hash nunca debe ser el password en claro.
	assert.NotEqual(t, "secreto123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_CamposFaltantes_RetornaErrInvalidInput(t *testing.T) {
	uc, _ := newTestUseCase()

	cases := []dto.RegisterRequest{
		{Email: "ana@example.com", Password: "secreto123"},
		{Name: "Ana", Password: "secreto123"},
		{Name: "Ana", Email: "ana@example.com"},
	}
	for _, in := range cases {
		_, err := uc.Register(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestRegister_EmailDuplicado_RetornaErrEmailAlreadyExists(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Name: "Otra Ana", Email: "ana@example.com", Password: "otro456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesCorrectas_RetornaTokenYUsuario(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "Ana", out.User.Name)
}

// Email desconocido y password incorrecto deben devolver el MISMO error para
// no filtrar cuál de las dos verificaciones falló.
func TestLogin_EmailDesconocidoYPasswordIncorrecto_MismoError(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)

	_, errEmail := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "secreto123"})
	_, errPass := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecto"})

	assert.ErrorIs(t, errEmail, domain.ErrUnauthorized)
	assert.ErrorIs(t, errPass, domain.ErrUnauthorized)
	assert.Equal(t, errEmail, errPass)
}

func TestProfile_UsuarioExistente(t *testing.T) {
	uc, repo := newTestUseCase()
	_, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)

	stored := repo.byEmail["ana@example.com"]
	out, err := uc.Profile(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.User.Name)
	assert.Equal(t, "ana@example.com", out.User.Email)
}

// Token válido cuyo usuario ya no existe (p. ej. cuenta borrada).
func TestProfile_UsuarioInexistente_RetornaErrUserNotFound(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Profile("00000000-0000-0000-0000-00000000dead")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
