// File: internal/handler/users/update_user.go
package users

import (
	"errors"
	"net/http"
	"strings"

	"auth-backend/internal/api"
	"auth-backend/internal/database"
	"auth-backend/internal/dto"
	"auth-backend/internal/middleware"
	"auth-backend/internal/store"

	"github.com/labstack/echo/v4"
)

// UpdateUserHandler 更新指定使用者資料（管理員專用）
// @Summary     Update a user by ID
// @Description 部分更新使用者姓名、Email 及管理員狀態，未提供的欄位保留原值。
// @Description 管理員不可移除自己的管理員權限。
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id      path string                true "使用者 ID"
// @Param       payload body api.UpdateUserRequest true "更新欄位"
// @Success     200 {object} dto.UpdateUserResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/{id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		claims, err := middleware.ClaimsFromContext(c)
		if err != nil {
			return err
		}

		// 自我鎖定防護：管理員不可把自己的 isAdmin 明確設為 false
		if claims.UserID == id && req.IsAdmin != nil && !*req.IsAdmin {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Cannot remove your own admin privileges"})
		}

		if req.Email != nil {
			lower := strings.ToLower(*req.Email)
			req.Email = &lower
		}

		updated, err := store.UpdateUser(c.Request().Context(), db, id, store.UpdateUserParams{
			Name:    req.Name,
			Email:   req.Email,
			IsAdmin: req.IsAdmin,
		})
		if err != nil {
			switch {
			case errors.Is(err, store.ErrUserNotFound):
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "User not found"})
			case errors.Is(err, store.ErrDuplicateEmail):
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Email already in use"})
			default:
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Failed to update user"})
			}
		}

		return c.JSON(http.StatusOK, dto.UpdateUserResponse{
			Msg:  "User updated successfully",
			User: dto.NewUserResponse(*updated),
		})
	}
}
