// File: internal/handler/users/identity.go
package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fashion-store/internal/cache"
	"fashion-store/internal/database"
	"fashion-store/internal/dto"
	"fashion-store/internal/middleware"
	"fashion-store/internal/service"
	"fashion-store/internal/store"
	"fashion-store/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// identityCacheTTL 快取身分查詢結果的有效時間
const identityCacheTTL = 5 * time.Minute

func identityCacheKey(userID int) string {
	return fmt.Sprintf("identity:%d", userID)
}

// IdentityHandler 取得當前使用者資訊
// @Summary     查詢身分
// @Description 透過 JWT 令牌的 user_id 與 email 查詢使用者詳細資訊
// @Tags        users
// @Produce     json
// @Success     200 {object} dto.UserResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /identity [get]
func IdentityHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		claimsRaw := c.Get(middleware.ContextUserKey)
		claims, ok := claimsRaw.(*service.Claims)
		if !ok || claimsRaw == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Unauthorized access"})
		}

		// 先查快取
		key := identityCacheKey(claims.UserID)
		if raw, err := rdb.Get(c.Request().Context(), key).Bytes(); err == nil {
			return c.JSONBlob(http.StatusOK, raw)
		}

		user, err := store.GetUserByIDAndEmail(c.Request().Context(), db, claims.UserID, claims.Email)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Unauthorized access"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: err.Error()})
		}

		resp := toUserResponse(user)

		// 快取寫入移出請求路徑
		if raw, err := json.Marshal(resp); err == nil {
			wp.Submit(func() {
				rdb.Set(context.Background(), key, raw, identityCacheTTL)
			})
		}

		return c.JSON(http.StatusOK, resp)
	}
}
