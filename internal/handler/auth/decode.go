// File: internal/handler/auth/decode.go
package auth

import (
	"net/http"

	"fashion-store/internal/dto"
	"fashion-store/internal/service"

	"github.com/labstack/echo/v4"
)

// DecodeHandler 反映令牌內的 claims
// @Summary     解碼存取令牌
// @Description 解碼並回傳令牌的 claims；僅揭露呼叫者已持有令牌的內容
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body dto.DecodeRequest true "待解碼令牌"
// @Success     200 {object} dto.ClaimsResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Router      /decode [post]
func DecodeHandler(secret string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.DecodeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{
				Message: "Decode failed",
				Errors:  dto.ValidationMessages(err),
			})
		}

		claims, err := service.DecodeAccessToken(req.AccessToken, secret)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, dto.ClaimsResponse{
			UserID:    claims.UserID,
			Email:     claims.Email,
			IssuedAt:  claims.IssuedAt.Unix(),
			NotBefore: claims.NotBefore.Unix(),
			ExpiresAt: claims.ExpiresAt.Unix(),
		})
	}
}
