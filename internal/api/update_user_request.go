// File: internal/api/update_user_request.go
package api

// UpdateUserRequest 部分更新，未帶的欄位保持原值
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1" example:"Alice"`
	Email *string `json:"email,omitempty" validate:"omitempty,email" example:"alice@example.com"`
	Role  *string `json:"role,omitempty" validate:"omitempty,oneof=admin user" example:"user"`
}
