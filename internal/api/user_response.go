// File: internal/api/user_response.go
package api

import (
	"time"

	"identity-api/internal/model"
)

// UserResponse 對外的使用者資訊，永遠不包含密碼哈希
// swagger:model api.UserResponse
type UserResponse struct {
	ID        string    `json:"id" example:"3f2e9c1a-7b64-4c1f-9f6a-2d1f0b9c8e7d"`
	Name      string    `json:"name" example:"Alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	Role      string    `json:"role" example:"user"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-05-01T15:04:05Z"`
}

// NewUserResponse 由 model.User 組裝回應
func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
