package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/pkg/jwt"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) PermissionsForRole(ctx context.Context, role string) ([]string, error) {
	args := m.Called(ctx, role)
	p, _ := args.Get(0).([]string)
	return p, args.Error(1)
}

const secret = "test-secret"

func TestRegisterThenLogin(t *testing.T) {
	repo := new(mockUserRepo)
	uc := NewAuthUseCase(repo, JWTConfig{Secret: secret, ExpMinutes: 5, Issuer: "test"})
	ctx := context.Background()

	var stored *entity.User
	repo.On("GetByEmail", ctx, "sup@vigilancia.co").Return(nil, nil).Once()
	repo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*entity.User)
	}).Return(nil)

	user, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "sup@vigilancia.co", Password: "clave-segura", Role: entity.RoleSupervisor})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSupervisor, user.Role)
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave-segura", stored.PasswordHash)

	repo.On("GetByEmail", ctx, "sup@vigilancia.co").Return(stored, nil)
	repo.On("PermissionsForRole", ctx, entity.RoleSupervisor).Return([]string{"inventario.movimiento", "rondas.editar"}, nil)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "sup@vigilancia.co", Password: "clave-segura"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"inventario.movimiento", "rondas.editar"}, out.Permissions)

	id, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, id.UserID)
	assert.Equal(t, entity.RoleSupervisor, id.Role)
	repo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	uc := NewAuthUseCase(repo, JWTConfig{Secret: secret})
	ctx := context.Background()
	repo.On("GetByEmail", ctx, "a@b.co").Return(&entity.User{ID: "x"}, nil)

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_Failures(t *testing.T) {
	repo := new(mockUserRepo)
	uc := NewAuthUseCase(repo, JWTConfig{Secret: secret})
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "nadie@b.co").Return(nil, nil)
	_, err := uc.Login(ctx, dto.LoginRequest{Email: "nadie@b.co", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	repo.On("GetByEmail", ctx, "inactivo@b.co").Return(&entity.User{PasswordHash: "$2a$10$invalid"}, nil)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "inactivo@b.co", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
