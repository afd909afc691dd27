package server

import (
	"net/http"

	"quickstore/internal/config"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New はechoを組み立てる。ルート登録は routes.go 側。
func New(cfg config.Config, deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	//フロントのoriginだけ許可
	if cfg.FEURL != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: []string{cfg.FEURL},
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
			AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Store-ID"},
		}))
	}

	RegisterRoutes(e, cfg, deps)

	return e
}

// Start はサーバーを起動する。
func Start(cfg config.Config, deps Deps) error {
	e := New(cfg, deps)
	return e.Start(":" + cfg.Port)
}
