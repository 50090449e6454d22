// File: internal/handler/users/update_user.go
package users

import (
	"net/http"
	"strings"

	"identity-api/internal/api"
	"identity-api/internal/cache"
	"identity-api/internal/database"
	"identity-api/internal/errs"
	"identity-api/internal/middleware"
	"identity-api/internal/model"
	"identity-api/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UpdateUserHandler 更新指定使用者資料
// 本人可改自己的基本資料，角色變更與改他人資料需要管理員，
// 實際的規則判斷在 service 層
// @Summary     Update a user by ID
// @Description 部分更新使用者姓名、Email 或角色 (Email 會自動轉小寫)
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path string                true "使用者 ID (UUID)"
// @Param       body body api.UpdateUserRequest true "更新欄位"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [patch]
func UpdateUserHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		requester, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		patch := store.UserPatch{Name: req.Name}
		if req.Email != nil {
			email := strings.ToLower(*req.Email)
			patch.Email = &email
		}
		if req.Role != nil {
			role := model.Role(*req.Role)
			patch.Role = &role
		}

		updated, err := updateUser(c.Request().Context(), db, requester.ID, id, patch, requester.Role)
		if err != nil {
			switch errs.KindOf(err) {
			case errs.KindNotFound:
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: err.Error()})
			case errs.KindUnauthorizedUpdate:
				return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: err.Error()})
			case errs.KindEmailInUse:
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: err.Error()})
			default:
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
		}

		// 讓快取失效，失敗不影響回應
		rdb.Del(c.Request().Context(), userCacheKeyPrefix+id.String())

		return c.JSON(http.StatusOK, api.NewUserResponse(*updated))
	}
}
