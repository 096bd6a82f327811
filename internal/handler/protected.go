// File: internal/handler/protected.go
package handler

import (
	"net/http"

	"auth-backend/internal/database"
	"auth-backend/internal/dto"
	"auth-backend/internal/middleware"
	"auth-backend/internal/store"

	"github.com/labstack/echo/v4"
)

// ProtectedHandler 受保護路由範例，回傳當前使用者的精簡資訊
// @Summary     Protected route example
// @Description 需有效存取令牌，回傳當前使用者的 id、email 與姓名
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.ProtectedResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /protected [get]
func ProtectedHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := middleware.ClaimsFromContext(c)
		if err != nil {
			return err
		}

		user, err := store.GetUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error accessing protected route"})
		}

		return c.JSON(http.StatusOK, dto.ProtectedResponse{
			Msg: "Successfully accessed protected route",
			User: dto.ProtectedUser{
				ID:    user.ID,
				Email: user.Email,
				Name:  user.Name,
			},
		})
	}
}
