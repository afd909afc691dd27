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
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderItemRequest struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      *string         `json:"unit"`
}

type OrderCreateRequest struct {
	Items        []OrderItemRequest `json:"items"`
	CustomerName *string            `json:"customer_name"`
	IsPaid       bool               `json:"is_paid"`
}

type OrderUpdateRequest struct {
	Items        []OrderItemRequest `json:"items"`
	CustomerName *string            `json:"customer_name"`
	IsPaid       *bool              `json:"is_paid"`
}

type BulkPaymentRequest struct {
	OrderIDs []uuid.UUID `json:"order_ids"`
	IsPaid   bool        `json:"is_paid"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, users repo.UserRepository, stores repo.StoreRepository) {
	g := e.Group("/orders")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.StoreResolver(users, stores))

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/today", h.listToday)
	g.PATCH("/bulk-payment", h.bulkPayment)
	g.GET("/:id", h.detail)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.GET("/:id/history", h.history)
}

func toItemInputs(items []OrderItemRequest) []usecase.OrderItemInput {
	if items == nil {
		return nil
	}
	out := make([]usecase.OrderItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, usecase.OrderItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Unit:      it.Unit,
		})
	}
	return out
}

func (h *OrderHandler) create(c echo.Context) error {
	store, ok := getStoreFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), store, userID, usecase.CreateOrderInput{
		Items:        toItemInputs(req.Items),
		CustomerName: req.CustomerName,
		IsPaid:       req.IsPaid,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) list(c echo.Context) error {
	store, ok := getStoreFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	//date=YYYY-MM-DD でその日の注文に絞れる
	var onDate *time.Time
	if v := c.QueryParam("date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date"})
		}
		onDate = &d
	}

	out, err := h.uc.List(c.Request().Context(), store, onDate)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) listToday(c echo.Context) error {
	store, ok := getStoreFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListToday(c.Request().Context(), store)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
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

func (h *OrderHandler) update(c echo.Context) error {
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

	var req OrderUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Update(c.Request().Context(), store, userID, id, usecase.UpdateOrderInput{
		Items:        toItemInputs(req.Items),
		CustomerName: req.CustomerName,
		IsPaid:       req.IsPaid,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) delete(c echo.Context) error {
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

func (h *OrderHandler) history(c echo.Context) error {
	store, ok := getStoreFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	entries, err := h.uc.History(c.Request().Context(), store, id)
	if err != nil {
		return writeError(c, err)
	}

	//保存済みJSONを展開して返す
	type historyEntry struct {
		ID            uuid.UUID           `json:"id"`
		OrderID       uuid.UUID           `json:"order_id"`
		EditedAt      time.Time           `json:"edited_at"`
		EditedBy      uuid.UUID           `json:"edited_by"`
		PreviousState interface{}         `json:"previous_state"`
	}

	out := make([]historyEntry, 0, len(entries))
	for _, e := range entries {
		snap, err := e.Snapshot()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
		out = append(out, historyEntry{
			ID:            e.ID,
			OrderID:       e.OrderID,
			EditedAt:      e.EditedAt,
			EditedBy:      e.EditedBy,
			PreviousState: snap,
		})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) bulkPayment(c echo.Context) error {
	store, ok := getStoreFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req BulkPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.BulkUpdatePayment(c.Request().Context(), store, usecase.BulkUpdatePaymentInput{
		OrderIDs: req.OrderIDs,
		IsPaid:   req.IsPaid,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
