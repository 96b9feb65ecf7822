// Package logger 提供 zerolog 的建構函式，全專案共用同一種輸出格式。
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New 建立標記 role 欄位的 JSON logger，輸出至 stdout。
// role 用於區分不同元件的日誌（如 "service"、"worker"）。
func New(role string) zerolog.Logger {
	return NewWithWriter(role, os.Stdout)
}

// NewWithWriter 同 New，但可指定輸出目標，測試時可注入 buffer。
func NewWithWriter(role string, w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Logger()
}
