package server

import (
	"net/http"

	"quickstore/internal/config"
	"quickstore/internal/handler"
	repo "quickstore/internal/repository"

	"github.com/labstack/echo/v4"
)

// ハンドラとミドルウェアの依存をまとめて受け取る
type Deps struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Order    *handler.OrderHandler
	Unit     *handler.UnitHandler
	Customer *handler.CustomerHandler
	Session  *handler.SessionHandler
	Combo    *handler.ComboHandler

	Users  repo.UserRepository
	Stores repo.StoreRepository
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, deps Deps) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	deps.Auth.RegisterRoutes(e, cfg)
	deps.Unit.RegisterRoutes(e, cfg)
	deps.Product.RegisterRoutes(e, cfg, deps.Users, deps.Stores)
	deps.Order.RegisterRoutes(e, cfg, deps.Users, deps.Stores)
	deps.Customer.RegisterRoutes(e, cfg, deps.Users, deps.Stores)
	deps.Session.RegisterRoutes(e, cfg, deps.Users, deps.Stores)
	deps.Combo.RegisterRoutes(e, cfg, deps.Users, deps.Stores)
}
