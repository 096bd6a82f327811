// File: internal/handler/auth/refresh.go
package auth

import (
	"net/http"

	"auth-backend/internal/api"
	"auth-backend/internal/database"
	"auth-backend/internal/dto"
	"auth-backend/internal/service"
	"auth-backend/internal/store"

	"github.com/labstack/echo/v4"
)

// RefreshTokenHandler 以刷新令牌換發新令牌組
// @Summary     刷新令牌
// @Description 驗證刷新令牌並換發新的存取與刷新令牌，舊的刷新令牌即刻作廢（rotation）。
// @Description 換發的令牌僅帶 id 與 email，不帶管理員 claim，需重新登入才會補回。
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       payload body api.RefreshTokenRequest true "刷新令牌"
// @Success     200 {object} dto.TokenResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Router      /refresh-token [post]
func RefreshTokenHandler(db database.DB, ts *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RefreshTokenRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if req.RefreshToken == "" {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Refresh token required"})
		}

		// 令牌必須是該使用者當前持有的那一組，已被輪換者一律視為無效
		user, err := store.GetUserByRefreshToken(c.Request().Context(), db, req.RefreshToken)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Invalid refresh token"})
		}

		// 再做密碼學驗證（簽章與效期）
		if _, err := ts.VerifyRefreshToken(req.RefreshToken); err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Invalid refresh token"})
		}

		accessToken, err := ts.IssueAccessToken(user.ID, user.Email, false)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Token refresh failed"})
		}
		newRefreshToken, err := ts.IssueRefreshToken(user.ID, user.Email, false)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Token refresh failed"})
		}

		// rotation：覆寫後舊令牌永久失效
		if err := store.UpdateUserRefreshToken(c.Request().Context(), db, user.ID, newRefreshToken); err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Token refresh failed"})
		}

		return c.JSON(http.StatusOK, dto.TokenResponse{
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
		})
	}
}
