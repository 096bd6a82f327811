// File: internal/api/update_user_request.go
package api

// UpdateUserRequest 各欄位皆為選填，nil 表示保留原值。
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1" example:"Alice"`
	Email   *string `json:"email" validate:"omitempty,email" example:"alice@example.com"`
	IsAdmin *bool   `json:"isAdmin" example:"false"`
}
