// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"auth-backend/internal/api"
	"auth-backend/internal/database"
	"auth-backend/internal/dto"
	"auth-backend/internal/model"
	"auth-backend/internal/service"
	"auth-backend/internal/store"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 註冊新使用者
// @Summary     Register a new user
// @Description 建立新帳號 (Email 會自動轉小寫)，註冊成功後需另行登入取得令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       payload body api.RegisterRequest true "註冊資料"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Router      /register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		// Email 轉為小寫以確保一致性
		req.Email = strings.ToLower(req.Email)

		// 先查重複，資料庫 unique constraint 為最後防線
		if _, err := store.GetUserByEmail(c.Request().Context(), db, req.Email); err == nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "User already exists"})
		}

		// 密碼哈希，明文不落地
		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Registration failed"})
		}

		user := &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			IsAdmin:      req.IsAdmin,
		}
		if _, err := store.CreateUser(c.Request().Context(), db, user); err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "User already exists"})
			}
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Registration failed"})
		}

		return c.JSON(http.StatusOK, dto.MessageResponse{Msg: "User registered successfully"})
	}
}
