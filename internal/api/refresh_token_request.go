// File: internal/api/refresh_token_request.go
package api

// RefreshToken 缺漏時由 handler 回 401 而非驗證錯誤的 400，
// 因此不掛 required tag。
// swagger:model api.RefreshTokenRequest
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOi..."`
}
