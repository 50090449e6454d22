package middleware

import (
	"net/http"
	"strings"

	"identity-api/internal/database"
	"identity-api/internal/model"
	"identity-api/internal/service"
	"identity-api/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// 測試用注入點
var getUserByID = store.GetUserByID

func extractClaims(c echo.Context, tokens *service.TokenService) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := tokens.Verify(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

// RequireAuth 驗證 Bearer Token 並載入對應的使用者放進 context
// 令牌無效、缺失或帳號已不存在一律回 401，先於任何角色檢查
func RequireAuth(db database.DB, tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, tokens)
			if err != nil {
				return err
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := getUserByID(c.Request().Context(), db, userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "user does not exist")
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireRole 檢查已登入使用者是否達到最低角色位階
// 必須掛在 RequireAuth 之後，順序即短路語意：先認證、後授權
func RequireRole(min model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextUserKey).(*model.User)
			if !ok || user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}
			if !model.Authorize(min, user.Role) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

// CurrentUser 取出 RequireAuth 放入 context 的使用者
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	return user, ok && user != nil
}
