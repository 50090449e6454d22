// File: internal/api/auth_response.go
package api

// swagger:model api.AuthResponse
type AuthResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token" example:"eyJhbGciOiJIUzI1NiJ9..."`
}
