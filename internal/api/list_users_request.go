package api

// swagger:model api.ListUsersRequest
type ListUsersRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100" example:"10"`
	Page  int `query:"page" validate:"omitempty,min=1" example:"1"`
}
