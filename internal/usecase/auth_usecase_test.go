package usecase_test

import (
	"context"
	"errors"
	"testing"

	"quickstore/internal/config"
	"quickstore/internal/domain/model"
	repo "quickstore/internal/repository"
	"quickstore/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUsers struct {
	users map[uuid.UUID]model.User
}

func (m *memUsers) FindByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return model.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) FindByUsername(ctx context.Context, username string) (model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, repo.ErrNotFound
}

func (m *memUsers) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	u, ok := m.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	u.PasswordHash = passwordHash
	m.users[id] = u
	return nil
}

type noopAuthValidator struct{}

func (noopAuthValidator) ValidateLogin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return errors.New("invalid input")
	}
	return nil
}

func (noopAuthValidator) ValidateChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return errors.New("invalid input")
	}
	return nil
}

func newAuthFixture(t *testing.T) (*usecase.AuthUsecase, *memUsers, model.User) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	user := model.User{
		ID:           uuid.New(),
		Username:     "cashier1",
		Email:        "cashier1@example.com",
		PasswordHash: string(hash),
		Role:         model.RoleUser,
		IsActive:     true,
	}
	users := &memUsers{users: map[uuid.UUID]model.User{user.ID: user}}

	cfg := config.Config{JWTSecret: "test-secret"}
	return usecase.NewAuthUsecase(cfg, users, noopAuthValidator{}), users, user
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	uc, _, user := newAuthFixture(t)

	out, err := uc.Login(context.Background(), usecase.AuthLoginRequest{
		Username: "cashier1",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, out.User.ID)
	assert.Equal(t, "bearer", out.Token.TokenType)

	//subにはユーザーIDが入る
	token, err := jwt.Parse(out.Token.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, "USER", claims["role"])
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	_, err := uc.Login(context.Background(), usecase.AuthLoginRequest{
		Username: "cashier1",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
}

func TestAuthUsecase_Login_UnknownUser(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	_, err := uc.Login(context.Background(), usecase.AuthLoginRequest{
		Username: "nobody",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
}

func TestAuthUsecase_Login_InactiveUser(t *testing.T) {
	uc, users, user := newAuthFixture(t)

	u := users.users[user.ID]
	u.IsActive = false
	users.users[user.ID] = u

	_, err := uc.Login(context.Background(), usecase.AuthLoginRequest{
		Username: "cashier1",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, usecase.ErrForbidden)
}

func TestAuthUsecase_Me(t *testing.T) {
	uc, _, user := newAuthFixture(t)

	out, err := uc.Me(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "cashier1", out.Username)

	_, err = uc.Me(context.Background(), uuid.New())
	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
}

func TestAuthUsecase_ChangePassword(t *testing.T) {
	uc, users, user := newAuthFixture(t)
	ctx := context.Background()

	_, err := uc.ChangePassword(ctx, user.ID, "secret-password", "new-password-123")
	require.NoError(t, err)

	//新しいパスワードで照合できる
	stored := users.users[user.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-password-123")))
}

func TestAuthUsecase_ChangePassword_WrongOldPassword(t *testing.T) {
	uc, _, user := newAuthFixture(t)

	_, err := uc.ChangePassword(context.Background(), user.ID, "wrong", "new-password-123")
	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
}
