// File: internal/dto/validation.go
package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ValidationMessages 將 validator 錯誤轉為逐欄位訊息，
// 沿用原系統 "<欄位> is required" / "<欄位> must be valid" 的格式。
func ValidationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "email":
			msgs = append(msgs, fe.Field()+" must be valid")
		default:
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}
	return msgs
}
