// File: internal/handler/users/get_user.go
package users

import (
	"encoding/json"
	"net/http"
	"time"

	"identity-api/internal/api"
	"identity-api/internal/cache"
	"identity-api/internal/database"
	"identity-api/internal/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const userCacheTTL = 30 * time.Second

// GetUserHandler 取得指定使用者資訊，結果短暫快取於 Redis
// @Summary     Get a user by ID
// @Description 根據使用者 ID 取得使用者資料
// @Tags        users
// @Produce     json
// @Param       id path string true "使用者 ID (UUID)"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		key := userCacheKeyPrefix + id.String()
		if cached, err := rdb.Get(c.Request().Context(), key).Bytes(); err == nil {
			return c.JSONBlob(http.StatusOK, cached)
		}

		user, err := getUser(c.Request().Context(), db, id)
		if err != nil {
			if errs.KindOf(err) == errs.KindNotFound {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := api.NewUserResponse(*user)
		if body, err := json.Marshal(resp); err == nil {
			// 快取失敗不影響回應
			rdb.Set(c.Request().Context(), key, body, userCacheTTL)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
