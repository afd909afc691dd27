package middleware

import (
	"net/http"

	"quickstore/internal/domain/model"
	repo "quickstore/internal/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const CtxStoreKey = "store" // model.Store

const storeIDHeader = "X-Store-ID"

// X-Store-IDヘッダの店舗を解決して、操作ユーザーの会社の店舗か確認する。
// 以降のハンドラはcontextのmodel.Storeだけを見る。
func StoreResolver(users repo.UserRepository, stores repo.StoreRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//AuthJWTが入れたuser_idを取得する
			rawUserID := c.Get(CtxUserIDKey)
			userID, ok := rawUserID.(uuid.UUID)
			if !ok || userID == uuid.Nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			rawStoreID := c.Request().Header.Get(storeIDHeader)
			if rawStoreID == "" {
				return c.JSON(http.StatusBadRequest, errorJSON("missing store id"))
			}
			storeID, err := uuid.Parse(rawStoreID)
			if err != nil {
				return c.JSON(http.StatusBadRequest, errorJSON("invalid store id"))
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			store, err := stores.FindByID(c.Request().Context(), storeID)
			if err != nil {
				return c.JSON(http.StatusForbidden, errorJSON("store access denied"))
			}

			//ADMIN以外は自社の店舗だけ
			if user.Role != model.RoleAdmin {
				if user.CompanyID == nil || *user.CompanyID != store.CompanyID {
					return c.JSON(http.StatusForbidden, errorJSON("store access denied"))
				}
			}

			c.Set(CtxStoreKey, store)

			return next(c)
		}
	}
}
