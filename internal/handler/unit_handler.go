package handler

import (
	"net/http"

	"quickstore/internal/config"
	"quickstore/internal/domain/model"
	"quickstore/internal/middleware"
	"quickstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /units の単位マスタAPI
type UnitHandler struct {
	uc *usecase.UnitUsecase
}

// DI
func NewUnitHandler(uc *usecase.UnitUsecase) *UnitHandler {
	return &UnitHandler{uc: uc}
}

func (h *UnitHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/units")
	g.Use(middleware.AuthJWT(cfg))

	g.GET("", h.list)
	g.GET("/convert", h.convert)
	g.GET("/:code", h.detail)
}

func (h *UnitHandler) list(c echo.Context) error {
	var unitType *model.UnitType
	if v := c.QueryParam("type"); v != "" {
		t := model.UnitType(v)
		unitType = &t
	}

	out, err := h.uc.List(c.Request().Context(), unitType)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UnitHandler) detail(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UnitHandler) convert(c echo.Context) error {
	rawQty := c.QueryParam("quantity")
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	if rawQty == "" || from == "" || to == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quantity, from and to are required"})
	}

	qty, err := decimal.NewFromString(rawQty)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quantity"})
	}
	if qty.IsNegative() {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quantity must be non-negative"})
	}

	out, err := h.uc.Convert(c.Request().Context(), qty, from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
