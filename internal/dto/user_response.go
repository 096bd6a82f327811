// File: internal/dto/user_response.go
package dto

import (
	"time"

	"auth-backend/internal/model"
)

// UserResponse 使用者安全投影，永不包含密碼哈希與刷新令牌
// swagger:model dto.UserResponse
type UserResponse struct {
	ID        string    `json:"id" example:"6f1c0f8e-8b3a-4b62-9b65-3de1a9e2f0aa"`
	Name      string    `json:"name" example:"Alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	IsAdmin   bool      `json:"isAdmin" example:"false"`
	CreatedAt time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
}

// NewUserResponse 由 model.User 組出安全投影
func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// swagger:model dto.UsersResponse
type UsersResponse struct {
	Users []UserResponse `json:"users"`
}

// swagger:model dto.UpdateUserResponse
type UpdateUserResponse struct {
	Msg  string       `json:"msg" example:"User updated successfully"`
	User UserResponse `json:"user"`
}
