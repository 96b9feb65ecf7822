// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"fashion-store/internal/cache"
	"fashion-store/internal/config"
	"fashion-store/internal/database"
	"fashion-store/internal/handler"
	"fashion-store/internal/handler/auth"
	"fashion-store/internal/handler/orders"
	"fashion-store/internal/handler/users"
	"fashion-store/internal/middleware"
	"fashion-store/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool, cfg *config.Config) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db))

	// 註冊與登入
	api.POST("/register", auth.RegisterHandler(db))
	api.POST("/login", auth.LoginHandler(db, cfg.JWTSecret, cfg.AccessTokenTTL))
	api.POST("/decode", auth.DecodeHandler(cfg.JWTSecret))
	api.GET("/user", users.ListUsersHandler(db))

	// 需要令牌的路由
	requireAuth := middleware.RequireAuth(cfg.JWTSecret)
	api.GET("/identity", users.IdentityHandler(db, rdb, wp), requireAuth)
	api.POST("/order", orders.CreateOrderHandler(db), requireAuth)
}
