package handler

import (
	"net/http"

	"quickstore/internal/config"
	"quickstore/internal/middleware"
	repo "quickstore/internal/repository"
	"quickstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /combos セット商品API
type ComboHandler struct {
	uc *usecase.ComboUsecase
}

// DI
func NewComboHandler(uc *usecase.ComboUsecase) *ComboHandler {
	return &ComboHandler{uc: uc}
}

func (h *ComboHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, users repo.UserRepository, stores repo.StoreRepository) {
	g := e.Group("/combos")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.StoreResolver(users, stores))

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

type ComboItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type ComboSaveRequest struct {
	Name       string             `json:"name"`
	TotalPrice decimal.Decimal    `json:"total_price"`
	Items      []ComboItemRequest `json:"items"`
}

func toComboInput(req ComboSaveRequest) usecase.SaveComboInput {
	items := make([]usecase.ComboItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.ComboItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return usecase.SaveComboInput{
		Name:       req.Name,
		TotalPrice: req.TotalPrice,
		Items:      items,
	}
}

func (h *ComboHandler) create(c echo.Context) error {
	store, ok := getStoreFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req ComboSaveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), store, toComboInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ComboHandler) list(c echo.Context) error {
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

func (h *ComboHandler) get(c echo.Context) error {
	store, ok := getStoreFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.Get(c.Request().Context(), store, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ComboHandler) update(c echo.Context) error {
	store, ok := getStoreFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ComboSaveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Update(c.Request().Context(), store, id, toComboInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ComboHandler) delete(c echo.Context) error {
	store, ok := getStoreFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), store, id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
