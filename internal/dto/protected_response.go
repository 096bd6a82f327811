// File: internal/dto/protected_response.go
package dto

// ProtectedUser 受保護路由回傳的精簡投影
// swagger:model dto.ProtectedUser
type ProtectedUser struct {
	ID    string `json:"id" example:"6f1c0f8e-8b3a-4b62-9b65-3de1a9e2f0aa"`
	Email string `json:"email" example:"alice@example.com"`
	Name  string `json:"name" example:"Alice"`
}

// swagger:model dto.ProtectedResponse
type ProtectedResponse struct {
	Msg  string        `json:"msg" example:"Successfully accessed protected route"`
	User ProtectedUser `json:"user"`
}
