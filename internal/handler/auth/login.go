// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"

	"auth-backend/internal/api"
	"auth-backend/internal/database"
	"auth-backend/internal/dto"
	"auth-backend/internal/service"
	"auth-backend/internal/store"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳存取與刷新令牌
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳令牌組與管理員旗標。
// @Description 刷新令牌為單一槽位，登入會覆寫先前發出的刷新令牌。
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       payload body api.LoginRequest true "登入資料"
// @Success     200 {object} dto.LoginResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Router      /login [post]
func LoginHandler(db database.DB, ts *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		// 撈使用者資料
		user, err := store.GetUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Invalid credentials"})
		}

		// 驗證密碼
		if err := service.ComparePassword(user.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Invalid credentials"})
		}

		// 發行令牌組，登入時帶入當下的管理員旗標
		accessToken, err := ts.IssueAccessToken(user.ID, user.Email, user.IsAdmin)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Login failed"})
		}
		refreshToken, err := ts.IssueRefreshToken(user.ID, user.Email, user.IsAdmin)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Login failed"})
		}

		// 覆寫刷新令牌，舊的 session 隨即失效
		if err := store.UpdateUserRefreshToken(c.Request().Context(), db, user.ID, refreshToken); err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Login failed"})
		}

		return c.JSON(http.StatusOK, dto.LoginResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			IsAdmin:      user.IsAdmin,
		})
	}
}
