// File: internal/api/signin_request.go
package api

// swagger:model api.SignInRequest
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}
