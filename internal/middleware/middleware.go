package middleware

import (
	"errors"
	"net/http"
	"strings"

	"fashion-store/internal/service"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

const ContextUserKey = "user"

// extractClaims 取出 Bearer token 並透過 Token Codec 解碼。
// 驗證流程：Extract → Decode → 時間窗檢查（Codec 內完成）。
// Authorization 標頭缺少、為空或格式不符一律拒絕，不得以
// 未認證身分通過。
func extractClaims(c echo.Context, secret string) (*service.Claims, error) {
	authHeader := strings.TrimSpace(c.Request().Header.Get("Authorization"))
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized access")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized access")
	}
	claims, err := service.DecodeAccessToken(parts[1], secret)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Token expired")
		}
		return nil, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return claims, nil
}

// RequireAuth 建立驗證中介層，成功時將 claims（user_id、email）
// 綁定到請求 context。
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, secret)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequestLogger 以 zerolog 記錄每筆請求的結果。
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:  true,
		LogMethod:  true,
		LogURI:     true,
		LogError:   true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Error().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
