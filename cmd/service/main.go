// File: cmd/service/main.go
// @title        Fashion Store API
// @version      1.0
// @description  小型電商後端：註冊、登入、身分查詢與下訂單
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"os"

	"fashion-store/internal/cache"
	"fashion-store/internal/config"
	"fashion-store/internal/database"
	"fashion-store/internal/logger"
	"fashion-store/internal/middleware"
	"fashion-store/internal/router"
	"fashion-store/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	_ "fashion-store/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	redis, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	log := logger.New("service")

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HideBanner = true
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())

	router.Setup(e, db, redis, wp, cfg)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("starting server")
	return startServer(e, cfg.HTTPAddr)
}

func main() {
	if err := run(); err != nil {
		log := logger.New("service")
		log.Error().Err(err).Msg("service exited")
		exitFunc(1)
	}
}
