// File: internal/handler/users/list_users.go
package users

import (
	"net/http"

	"auth-backend/internal/database"
	"auth-backend/internal/dto"
	"auth-backend/internal/store"

	"github.com/labstack/echo/v4"
)

// ListUsersHandler 取得所有使用者（管理員專用）
// @Summary     List all users
// @Description 回傳所有使用者的安全投影，依建立時間由新到舊排序
// @Tags        users
// @Produce     json
// @Success     200 {object} dto.UsersResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := store.ListUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Failed to fetch users"})
		}

		resp := dto.UsersResponse{Users: make([]dto.UserResponse, 0, len(users))}
		for _, u := range users {
			resp.Users = append(resp.Users, dto.NewUserResponse(u))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
