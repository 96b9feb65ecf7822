// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config 啟動時載入一次的應用程式設定，載入後不再變動。
type Config struct {
	// DatabaseURL PostgreSQL 連線字串
	DatabaseURL string `env:"DATABASE_URL,required"`

	// HTTPAddr HTTP 服務監聽位址
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// JWTSecret 簽發與驗證存取令牌的共享密鑰
	JWTSecret string `env:"JWT_SECRET,required"`

	// AccessTokenTTL 存取令牌有效時間（nbf = 簽發時間，exp = 簽發時間 + TTL）
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"30m"`

	// Redis 連線設定
	RedisAddr     string `env:"REDIS_ADDR,required"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// WorkerCount 背景快取寫入的 worker 數量
	WorkerCount int `env:"WORKER_COUNT" envDefault:"1"`
}

// Load 從環境變數解析 Config，缺少必要變數時回傳錯誤。
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.WorkerCount <= 0 {
		return nil, fmt.Errorf("invalid WORKER_COUNT: %d", cfg.WorkerCount)
	}
	return cfg, nil
}
