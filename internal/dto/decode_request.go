// File: internal/dto/decode_request.go
package dto

// swagger:model dto.DecodeRequest
type DecodeRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
}
