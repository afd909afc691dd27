package handler

import (
	"net/http"

	"quickstore/internal/config"
	"quickstore/internal/domain/model"
	"quickstore/internal/middleware"
	repo "quickstore/internal/repository"
	"quickstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func getUserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	v := c.Get(middleware.CtxUserIDKey)
	if v == nil {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func getStoreFromContext(c echo.Context) (model.Store, bool) {
	v := c.Get(middleware.CtxStoreKey)
	if v == nil {
		return model.Store{}, false
	}

	store, ok := v.(model.Store)
	if !ok {
		return model.Store{}, false
	}
	return store, true
}

// /products の店舗API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 商品のルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, users repo.UserRepository, stores repo.StoreRepository) {
	g := e.Group("/products")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.StoreResolver(users, stores))

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

type ProductCreateRequest struct {
	Name         string           `json:"name"`
	Price        decimal.Decimal  `json:"price"`
	Category     *string          `json:"category"`
	Inventory    *decimal.Decimal `json:"inventory"`
	BaseUnit     *string          `json:"base_unit"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit"`
}

type ProductUpdateRequest struct {
	Name         *string          `json:"name"`
	Price        *decimal.Decimal `json:"price"`
	Category     *string          `json:"category"`
	Inventory    *decimal.Decimal `json:"inventory"`
	BaseUnit     *string          `json:"base_unit"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit"`
}

func (h *ProductHandler) create(c echo.Context) error {
	store, ok := getStoreFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), store, usecase.CreateProductInput{
		Name:         req.Name,
		Price:        req.Price,
		Category:     req.Category,
		Inventory:    req.Inventory,
		BaseUnit:     req.BaseUnit,
		PricePerUnit: req.PricePerUnit,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *ProductHandler) list(c echo.Context) error {
	store, ok := getStoreFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var category *string
	if v := c.QueryParam("category"); v != "" {
		category = &v
	}

	out, err := h.uc.List(c.Request().Context(), store, category)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
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

func (h *ProductHandler) update(c echo.Context) error {
	store, ok := getStoreFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Update(c.Request().Context(), store, userID, id, usecase.UpdateProductInput{
		Name:         req.Name,
		Price:        req.Price,
		Category:     req.Category,
		Inventory:    req.Inventory,
		BaseUnit:     req.BaseUnit,
		PricePerUnit: req.PricePerUnit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) delete(c echo.Context) error {
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
