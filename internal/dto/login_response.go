// File: internal/dto/login_response.go
package dto

// swagger:model dto.LoginResponse
type LoginResponse struct {
	AccessToken  string `json:"access_token" example:"eyJhbGciOi..."`
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOi..."`
	IsAdmin      bool   `json:"isAdmin" example:"false"`
}
