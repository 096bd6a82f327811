// File: internal/handler/health.go
package handler

import (
	"net/http"
	"time"

	"auth-backend/internal/cache"
	"auth-backend/internal/database"
	"auth-backend/internal/dto"

	"github.com/labstack/echo/v4"
)

// HealthResponse 健康檢查回應模型
// swagger:model HealthResponse
type HealthResponse struct {
	// 服務狀態
	Status string `json:"status" example:"ok"`
}

// HealthHandler 健康檢查，檢查資料庫與快取連線是否正常
// @Summary     Health Check
// @Description 檢查資料庫與 Redis 連線，皆正常時回傳 ok
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /health [get]
func HealthHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "database unhealthy"})
		}
		if err := cch.Set(ctx, "health_check", "ok", time.Minute).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	}
}
