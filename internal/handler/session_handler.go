package handler

import (
	"net/http"
	"time"

	"quickstore/internal/config"
	"quickstore/internal/middleware"
	repo "quickstore/internal/repository"
	"quickstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// /sessions 営業日セッションAPI
type SessionHandler struct {
	uc *usecase.SessionUsecase
}

// DI
func NewSessionHandler(uc *usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

func (h *SessionHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, users repo.UserRepository, stores repo.StoreRepository) {
	g := e.Group("/sessions")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.StoreResolver(users, stores))

	g.GET("", h.byDate)
	g.GET("/current", h.current)
	g.POST("/:id/export", h.export)
}

func (h *SessionHandler) byDate(c echo.Context) error {
	store, ok := getStoreFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	//date未指定は今日扱い
	raw := c.QueryParam("date")
	if raw == "" {
		out, err := h.uc.Current(c.Request().Context(), store)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, out)
	}

	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date"})
	}

	out, err := h.uc.ByDate(c.Request().Context(), store, date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SessionHandler) current(c echo.Context) error {
	store, ok := getStoreFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.Current(c.Request().Context(), store)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SessionHandler) export(c echo.Context) error {
	store, ok := getStoreFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.MarkExported(c.Request().Context(), store, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
