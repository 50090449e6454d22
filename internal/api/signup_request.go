package api

// swagger:model api.SignUpRequest
type SignUpRequest struct {
	Name     string `json:"name" validate:"required" example:"Alice"`
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"Secret123!"`
	Role     string `json:"role" validate:"required,oneof=admin user" example:"user"`
}
