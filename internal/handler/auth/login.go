// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"
	"time"

	"fashion-store/internal/database"
	"fashion-store/internal/dto"
	"fashion-store/internal/service"
	"fashion-store/internal/store"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 驗證 Email 與 Password，成功時簽發 30 分鐘存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body dto.LoginRequest true "登入資料"
// @Success     200 {object} dto.LoginResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /login [post]
func LoginHandler(db database.DB, secret string, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		// 先 Bind
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{
				Message: "Login failed",
				Errors:  []string{"invalid request payload"},
			})
		}
		// 再驗證結構化參數，驗證失敗同樣回 401
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{
				Message: "Login failed",
				Errors:  dto.ValidationMessages(err),
			})
		}

		// 只撈 status=1 的使用者
		user, err := store.GetActiveUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Login failed"})
		}

		// 驗證密碼
		if err := service.ComparePassword(user.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Login failed"})
		}

		// 發行存取令牌
		token, err := service.IssueAccessToken(*user, secret, ttl)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, dto.LoginResponse{AccessToken: token})
	}
}
