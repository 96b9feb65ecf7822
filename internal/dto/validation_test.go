package dto

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestValidationMessages(t *testing.T) {
	v := validator.New()

	err := v.Struct(&RegisterRequest{Email: "not-an-email"})
	require.Error(t, err)
	msgs := ValidationMessages(err)
	require.Contains(t, msgs, "Email must be valid")
	require.Contains(t, msgs, "Password is required")
	require.Contains(t, msgs, "Name is required")

	err = v.Struct(&OrderRequest{AddressID: 1, Items: []OrderItem{{ProductID: 1, Quantity: -1}}})
	require.Error(t, err)
	msgs = ValidationMessages(err)
	require.Contains(t, msgs, "Quantity is invalid")

	// 非 validator 錯誤原樣回傳
	msgs = ValidationMessages(errors.New("plain"))
	require.Equal(t, []string{"plain"}, msgs)
}
