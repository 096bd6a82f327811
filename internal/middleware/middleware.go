package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"auth-backend/internal/database"
	"auth-backend/internal/service"
	"auth-backend/internal/store"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

func extractClaims(c echo.Context, ts *service.TokenService) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	tokenString := parts[1]
	claims, err := ts.VerifyAccessToken(tokenString)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// ClaimsFromContext 取出 RequireAuth 放入的身份，未經認證時回傳 401。
// handler 一律透過此函式取得身份，不直接碰 context key。
func ClaimsFromContext(c echo.Context) (*service.Claims, error) {
	claims, ok := c.Get(ContextUserKey).(*service.Claims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated identity")
	}
	return claims, nil
}

// RequireAuth 驗證 Bearer 存取令牌並將身份附加到 context
func RequireAuth(ts *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, ts)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin 由 RequireAuth 組合而成，認證一定先於授權檢查。
// 管理員身份查的是資料庫當下狀態而非令牌內的 claim，
// 權限被撤銷後舊令牌立即失效。
func RequireAdmin(ts *service.TokenService, db database.DB) echo.MiddlewareFunc {
	auth := RequireAuth(ts)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			claims, err := ClaimsFromContext(c)
			if err != nil {
				return err
			}
			user, err := store.GetUserByID(c.Request().Context(), db, claims.UserID)
			if err != nil || !user.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
			}
			return next(c)
		})
	}
}
