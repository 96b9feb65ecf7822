// File: internal/handler/orders/create_order.go
package orders

import (
	"net/http"

	"fashion-store/internal/database"
	"fashion-store/internal/dto"
	"fashion-store/internal/middleware"
	"fashion-store/internal/model"
	"fashion-store/internal/service"
	"fashion-store/internal/store"

	"github.com/labstack/echo/v4"
)

// CreateOrderHandler 建立訂單與其明細
// @Summary     下訂單
// @Description 在單一交易內建立訂單與所有明細，任一失敗即回滾
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       body body dto.OrderRequest true "訂單資料"
// @Success     201 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /order [post]
func CreateOrderHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claimsRaw := c.Get(middleware.ContextUserKey)
		claims, ok := claimsRaw.(*service.Claims)
		if !ok || claimsRaw == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Unauthorized access"})
		}

		var req dto.OrderRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{
				Message: "Order failed",
				Errors:  dto.ValidationMessages(err),
			})
		}

		order := &model.Order{
			UserID:        claims.UserID,
			UserAddressID: req.AddressID,
			Status:        model.OrderStatusPending,
		}
		details := make([]model.OrderDetail, 0, len(req.Items))
		for _, item := range req.Items {
			details = append(details, model.OrderDetail{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}

		// order_id 與明細狀態由 store 在交易內補上
		if err := store.CreateOrder(c.Request().Context(), db, order, details); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Order successfully"})
	}
}
