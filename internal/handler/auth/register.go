// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"fashion-store/internal/database"
	"fashion-store/internal/dto"
	"fashion-store/internal/model"
	"fashion-store/internal/service"
	"fashion-store/internal/store"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 建立新使用者帳號
// @Summary     註冊使用者
// @Description 驗證 email、password、name 後建立帳號，預設 level=0、status=1
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body dto.RegisterRequest true "註冊資料"
// @Success     201 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{
				Message: "Register failed",
				Errors:  []string{"invalid request payload"},
			})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{
				Message: "Register failed",
				Errors:  dto.ValidationMessages(err),
			})
		}

		// Email 轉為小寫以確保唯一性比對一致
		req.Email = strings.ToLower(req.Email)

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to hash password"})
		}

		user := &model.User{
			Email:        req.Email,
			PasswordHash: hash,
			Name:         req.Name,
			Level:        0,
			Status:       model.UserStatusActive,
		}

		if _, err := store.CreateUser(c.Request().Context(), db, user); err != nil {
			msg := err.Error()
			if errors.Is(err, store.ErrEmailTaken) {
				msg = store.ErrEmailTaken.Error()
			}
			return c.JSON(http.StatusBadRequest, dto.HTTPError{
				Message: "Register failed",
				Errors:  []string{msg},
			})
		}

		return c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Register successfully"})
	}
}
