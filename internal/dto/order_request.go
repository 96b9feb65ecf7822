// File: internal/dto/order_request.go
package dto

// OrderItem 訂單明細項目，order_id 與 status 由伺服器寫入。
// swagger:model dto.OrderItem
type OrderItem struct {
	ProductID int     `json:"product_id" validate:"required" example:"100"`
	Quantity  int     `json:"quantity" validate:"required,gt=0" example:"2"`
	Price     float64 `json:"price" validate:"gte=0" example:"19.99"`
}

// swagger:model dto.OrderRequest
type OrderRequest struct {
	AddressID int         `json:"address_id" validate:"required" example:"4"`
	Items     []OrderItem `json:"item" validate:"required,min=1,dive"`
}
