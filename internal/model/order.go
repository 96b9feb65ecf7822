// File: internal/model/order.go
package model

import "time"

// OrderStatusPending 新訂單的初始狀態
const OrderStatusPending = 0

type Order struct {
	ID            int       `db:"id" json:"id"`
	UserID        int       `db:"user_id" json:"user_id"`
	UserAddressID int       `db:"user_address_id" json:"user_address_id"`
	Status        int       `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// OrderDetail 訂單明細，order_id 指向所屬訂單。
// 明細只會與訂單在同一筆交易內一起寫入。
type OrderDetail struct {
	ID        int     `db:"id" json:"id"`
	OrderID   int     `db:"order_id" json:"order_id"`
	ProductID int     `db:"product_id" json:"product_id"`
	Quantity  int     `db:"quantity" json:"quantity"`
	Price     float64 `db:"price" json:"price"`
	Status    int     `db:"status" json:"status"`
}
