// File: internal/dto/claims_response.go
package dto

// ClaimsResponse 反映令牌內的 claims，時間為 unix 秒。
// swagger:model dto.ClaimsResponse
type ClaimsResponse struct {
	UserID    int    `json:"user_id" example:"1"`
	Email     string `json:"email" example:"alice@example.com"`
	IssuedAt  int64  `json:"iat"`
	NotBefore int64  `json:"nbf"`
	ExpiresAt int64  `json:"exp"`
}
