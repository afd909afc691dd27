package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"quickstore/internal/config"
	"quickstore/internal/domain/model"
	"quickstore/internal/middleware"
	repo "quickstore/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mwErrorResponse struct {
	Error string `json:"error"`
}

type mwOKResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// =====================
// helper
// =====================

func mustMakeJWT(t *testing.T, secret string, sub string, role string, signingMethod jwt.SigningMethod) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"iat":  1,
		"exp":  9999999999,
	}

	token := jwt.NewWithClaims(signingMethod, claims)

	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}
	return s
}

func runRequest(t *testing.T, e *echo.Echo, authHeader string, storeID string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if storeID != "" {
		req.Header.Set("X-Store-ID", storeID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeMWError(t *testing.T, rec *httptest.ResponseRecorder) mwErrorResponse {
	t.Helper()
	var r mwErrorResponse
	_ = json.NewDecoder(rec.Body).Decode(&r)
	return r
}

// =====================
// AuthJWT
// =====================

// Authorizationなし => 401
func TestMiddleware_AuthJWT_Unauthorized_NoHeader(t *testing.T) {
	e := echo.New()
	cfg := config.Config{JWTSecret: "test-secret"}

	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	}, middleware.AuthJWT(cfg))

	rec := runRequest(t, e, "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decodeMWError(t, rec).Error)
}

// Bearer形式じゃない => 401
func TestMiddleware_AuthJWT_Unauthorized_BadScheme(t *testing.T) {
	e := echo.New()
	cfg := config.Config{JWTSecret: "test-secret"}

	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	}, middleware.AuthJWT(cfg))

	rec := runRequest(t, e, "Token abc.def.ghi", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// 署名違い => 401
func TestMiddleware_AuthJWT_Unauthorized_BadSignature(t *testing.T) {
	e := echo.New()
	cfg := config.Config{JWTSecret: "correct-secret"}

	raw := mustMakeJWT(t, "wrong-secret", uuid.NewString(), "USER", jwt.SigningMethodHS256)

	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	}, middleware.AuthJWT(cfg))

	rec := runRequest(t, e, "Bearer "+raw, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// アルゴリズム違い（HS512）=> 401
func TestMiddleware_AuthJWT_Unauthorized_WrongAlg(t *testing.T) {
	e := echo.New()
	cfg := config.Config{JWTSecret: "test-secret"}

	raw := mustMakeJWT(t, cfg.JWTSecret, uuid.NewString(), "USER", jwt.SigningMethodHS512)

	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	}, middleware.AuthJWT(cfg))

	rec := runRequest(t, e, "Bearer "+raw, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// subがuuidじゃない => 401
func TestMiddleware_AuthJWT_Unauthorized_BadSub(t *testing.T) {
	e := echo.New()
	cfg := config.Config{JWTSecret: "test-secret"}

	raw := mustMakeJWT(t, cfg.JWTSecret, "123", "USER", jwt.SigningMethodHS256)

	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	}, middleware.AuthJWT(cfg))

	rec := runRequest(t, e, "Bearer "+raw, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// 正常：ctxに値が入る
func TestMiddleware_AuthJWT_Success_SetsContext(t *testing.T) {
	e := echo.New()
	cfg := config.Config{JWTSecret: "test-secret"}

	userID := uuid.New()
	raw := mustMakeJWT(t, cfg.JWTSecret, userID.String(), "USER", jwt.SigningMethodHS256)

	e.GET("/protected", func(c echo.Context) error {
		id, _ := c.Get(middleware.CtxUserIDKey).(uuid.UUID)
		role, _ := c.Get(middleware.CtxUserRoleKey).(string)
		return c.JSON(http.StatusOK, mwOKResponse{UserID: id.String(), Role: role})
	}, middleware.AuthJWT(cfg))

	rec := runRequest(t, e, "Bearer "+raw, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body mwOKResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, userID.String(), body.UserID)
	assert.Equal(t, "USER", body.Role)
}

// =====================
// StoreResolver
// =====================

type stubUsers struct{ users map[uuid.UUID]model.User }

func (s *stubUsers) FindByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return model.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (s *stubUsers) FindByUsername(ctx context.Context, username string) (model.User, error) {
	return model.User{}, repo.ErrNotFound
}

func (s *stubUsers) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return nil
}

type stubStores struct{ stores map[uuid.UUID]model.Store }

func (s *stubStores) FindByID(ctx context.Context, id uuid.UUID) (model.Store, error) {
	st, ok := s.stores[id]
	if !ok {
		return model.Store{}, repo.ErrNotFound
	}
	return st, nil
}

func (s *stubStores) FindByCompanyID(ctx context.Context, companyID uuid.UUID) (model.Store, error) {
	for _, st := range s.stores {
		if st.CompanyID == companyID {
			return st, nil
		}
	}
	return model.Store{}, repo.ErrNotFound
}

func newStoreResolverEcho(cfg config.Config, users *stubUsers, stores *stubStores) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		store, _ := c.Get(middleware.CtxStoreKey).(model.Store)
		return c.JSON(http.StatusOK, map[string]string{"store": store.ID.String()})
	}, middleware.AuthJWT(cfg), middleware.StoreResolver(users, stores))
	return e
}

func TestMiddleware_StoreResolver_OwnCompanyStore(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}

	companyID := uuid.New()
	user := model.User{ID: uuid.New(), Role: model.RoleUser, CompanyID: &companyID, IsActive: true}
	store := model.Store{ID: uuid.New(), CompanyID: companyID}

	e := newStoreResolverEcho(cfg,
		&stubUsers{users: map[uuid.UUID]model.User{user.ID: user}},
		&stubStores{stores: map[uuid.UUID]model.Store{store.ID: store}},
	)

	raw := mustMakeJWT(t, cfg.JWTSecret, user.ID.String(), "USER", jwt.SigningMethodHS256)
	rec := runRequest(t, e, "Bearer "+raw, store.ID.String())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), store.ID.String())
}

func TestMiddleware_StoreResolver_OtherCompanyStore(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}

	companyID := uuid.New()
	user := model.User{ID: uuid.New(), Role: model.RoleUser, CompanyID: &companyID, IsActive: true}
	store := model.Store{ID: uuid.New(), CompanyID: uuid.New()}

	e := newStoreResolverEcho(cfg,
		&stubUsers{users: map[uuid.UUID]model.User{user.ID: user}},
		&stubStores{stores: map[uuid.UUID]model.Store{store.ID: store}},
	)

	raw := mustMakeJWT(t, cfg.JWTSecret, user.ID.String(), "USER", jwt.SigningMethodHS256)
	rec := runRequest(t, e, "Bearer "+raw, store.ID.String())

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "store access denied", decodeMWError(t, rec).Error)
}

func TestMiddleware_StoreResolver_AdminCrossesCompanies(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}

	admin := model.User{ID: uuid.New(), Role: model.RoleAdmin, IsActive: true}
	store := model.Store{ID: uuid.New(), CompanyID: uuid.New()}

	e := newStoreResolverEcho(cfg,
		&stubUsers{users: map[uuid.UUID]model.User{admin.ID: admin}},
		&stubStores{stores: map[uuid.UUID]model.Store{store.ID: store}},
	)

	raw := mustMakeJWT(t, cfg.JWTSecret, admin.ID.String(), "ADMIN", jwt.SigningMethodHS256)
	rec := runRequest(t, e, "Bearer "+raw, store.ID.String())

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddleware_StoreResolver_MissingHeader(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}

	user := model.User{ID: uuid.New(), Role: model.RoleUser, IsActive: true}

	e := newStoreResolverEcho(cfg,
		&stubUsers{users: map[uuid.UUID]model.User{user.ID: user}},
		&stubStores{stores: map[uuid.UUID]model.Store{}},
	)

	raw := mustMakeJWT(t, cfg.JWTSecret, user.ID.String(), "USER", jwt.SigningMethodHS256)
	rec := runRequest(t, e, "Bearer "+raw, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
