// File: internal/handler/auth/signin.go
package auth

import (
	"net/http"

	"identity-api/internal/api"
	"identity-api/internal/database"
	"identity-api/internal/errs"
	"identity-api/internal/service"

	"github.com/labstack/echo/v4"
)

// SigninHandler 使用 Email/Password 驗證並回傳存取令牌
// @Summary     Sign in
// @Description 使用 Email 與 Password 進行驗證，回傳帳號資料與存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.SignInRequest true "登入資料"
// @Success     200 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/signin [post]
func SigninHandler(db database.DB, tokens *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignInRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, token, err := signIn(c.Request().Context(), db, tokens, req.Email, req.Password)
		if err != nil {
			if errs.KindOf(err) == errs.KindInvalidCredentials {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.AuthResponse{
			User:        api.NewUserResponse(*user),
			AccessToken: token,
		})
	}
}
