// File: internal/api/list_users_response.go
package api

import "identity-api/internal/pagination"

// swagger:model api.ListUsersResponse
type ListUsersResponse struct {
	Data []UserResponse  `json:"data"`
	Meta pagination.Meta `json:"meta"`
}
