// File: internal/handler/auth/signup.go
package auth

import (
	"net/http"

	"identity-api/internal/api"
	"identity-api/internal/database"
	"identity-api/internal/errs"
	"identity-api/internal/model"
	"identity-api/internal/service"

	"github.com/labstack/echo/v4"
)

// 測試用注入點
var (
	signUp = service.SignUp
	signIn = service.SignIn
)

// SignupHandler 註冊新帳號並回傳存取令牌
// @Summary     Sign up
// @Description 建立新帳號 (Email 會自動轉小寫)，成功時回傳帳號資料與存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.SignUpRequest true "註冊資料"
// @Success     201 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/signup [post]
func SignupHandler(db database.DB, tokens *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignUpRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, token, err := signUp(c.Request().Context(), db, tokens, req.Name, req.Email, req.Password, model.Role(req.Role))
		if err != nil {
			if errs.KindOf(err) == errs.KindDuplicateIdentity {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.AuthResponse{
			User:        api.NewUserResponse(*user),
			AccessToken: token,
		})
	}
}
