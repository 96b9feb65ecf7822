// File: internal/model/user.go
package model

import "time"

// 使用者狀態
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

type User struct {
	ID           int       `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	Level        int       `db:"level" json:"level"`
	Status       int       `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
