// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"auth-backend/internal/cache"
	"auth-backend/internal/database"
	"auth-backend/internal/handler"
	"auth-backend/internal/handler/auth"
	"auth-backend/internal/handler/users"
	"auth-backend/internal/middleware"
	"auth-backend/internal/service"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, ts *service.TokenService) {
	// 健康檢查（免認證）
	e.GET("/health", handler.HealthHandler(db, cch))

	api := e.Group("/api")

	// 註冊、登入與令牌刷新
	api.POST("/register", auth.RegisterHandler(db))
	api.POST("/login", auth.LoginHandler(db, ts))
	api.POST("/refresh-token", auth.RefreshTokenHandler(db, ts))

	// 管理員專屬使用者管理
	api.GET("/users", users.ListUsersHandler(db), middleware.RequireAdmin(ts, db))
	api.PUT("/users/:id", users.UpdateUserHandler(db), middleware.RequireAdmin(ts, db))

	// 受保護路由範例（僅需認證）
	api.GET("/protected", handler.ProtectedHandler(db), middleware.RequireAuth(ts))
}
