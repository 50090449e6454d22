// File: internal/handler/users/delete_user.go
package users

import (
	"net/http"

	"identity-api/internal/api"
	"identity-api/internal/cache"
	"identity-api/internal/database"
	"identity-api/internal/errs"
	"identity-api/internal/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DeleteUserHandler 刪除指定使用者
// 不可刪除自己（管理員也一樣），規則判斷在 service 層
// @Summary     Delete a user by ID
// @Description 根據使用者 ID 刪除使用者帳號
// @Tags        users
// @Param       id path string true "使用者 ID (UUID)"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		requester, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		if err := deleteUserSvc(c.Request().Context(), db, requester.ID, id, requester.Role); err != nil {
			switch errs.KindOf(err) {
			case errs.KindNotFound:
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: err.Error()})
			case errs.KindSelfDeletion, errs.KindInsufficientPermissions:
				return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: err.Error()})
			default:
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
		}

		// 讓快取失效，失敗不影響回應
		rdb.Del(c.Request().Context(), userCacheKeyPrefix+id.String())

		return c.NoContent(http.StatusNoContent)
	}
}
