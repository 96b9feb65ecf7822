// File: internal/dto/user_response.go
package dto

import "time"

// UserResponse 對外的使用者資訊，不含密碼哈希。
// swagger:model dto.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Email     string    `json:"email" example:"alice@example.com"`
	Name      string    `json:"name" example:"Alice"`
	Level     int       `json:"level" example:"0"`
	Status    int       `json:"status" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}
