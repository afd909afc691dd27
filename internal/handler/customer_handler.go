package handler

import (
	"net/http"

	"quickstore/internal/config"
	"quickstore/internal/middleware"
	repo "quickstore/internal/repository"
	"quickstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /customers 顧客名オートコンプリートAPI
type CustomerHandler struct {
	uc *usecase.CustomerUsecase
}

// DI
func NewCustomerHandler(uc *usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

func (h *CustomerHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, users repo.UserRepository, stores repo.StoreRepository) {
	g := e.Group("/customers")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.StoreResolver(users, stores))

	g.GET("", h.list)
	g.POST("", h.record)
}

type CustomerRecordRequest struct {
	Name string `json:"name"`
}

func (h *CustomerHandler) list(c echo.Context) error {
	store, ok := getStoreFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.List(c.Request().Context(), store)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) record(c echo.Context) error {
	store, ok := getStoreFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req CustomerRecordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.Record(c.Request().Context(), store, req.Name); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
