// File: internal/dto/message_response.go
package dto

// swagger:model dto.MessageResponse
type MessageResponse struct {
	Msg string `json:"msg" example:"User registered successfully"`
}
