// File: internal/handler/users/list_users.go
package users

import (
	"net/http"

	"fashion-store/internal/database"
	"fashion-store/internal/dto"
	"fashion-store/internal/model"
	"fashion-store/internal/store"

	"github.com/labstack/echo/v4"
)

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Level:     u.Level,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

// ListUsersHandler 列出所有使用者
// @Summary     列出使用者
// @Description 回傳所有使用者（不含密碼哈希）
// @Tags        users
// @Produce     json
// @Success     200 {array} dto.UserResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /user [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := store.ListUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: err.Error()})
		}

		resp := make([]dto.UserResponse, 0, len(list))
		for i := range list {
			resp = append(resp, toUserResponse(&list[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
