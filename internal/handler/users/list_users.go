// File: internal/handler/users/list_users.go
package users

import (
	"net/http"

	"identity-api/internal/api"
	"identity-api/internal/database"

	"github.com/labstack/echo/v4"
)

// ListUsersHandler 分頁列出使用者
// @Summary     List users
// @Description 依建立時間新到舊分頁列出使用者
// @Tags        users
// @Produce     json
// @Param       limit query int false "每頁筆數 (1-100)" default(10)
// @Param       page  query int false "頁碼 (>= 1)" default(1)
// @Success     200 {object} api.ListUsersResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ListUsersRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if req.Limit == 0 {
			req.Limit = 10
		}
		if req.Page == 0 {
			req.Page = 1
		}

		users, meta, err := listUsers(c.Request().Context(), db, req.Limit, req.Page)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		data := make([]api.UserResponse, 0, len(users))
		for _, u := range users {
			data = append(data, api.NewUserResponse(u))
		}
		return c.JSON(http.StatusOK, api.ListUsersResponse{Data: data, Meta: meta})
	}
}
