// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"identity-api/internal/cache"
	"identity-api/internal/database"
	"identity-api/internal/handler"
	"identity-api/internal/handler/auth"
	"identity-api/internal/handler/users"
	"identity-api/internal/middleware"
	"identity-api/internal/model"
	"identity-api/internal/service"
)

// Setup 註冊所有路由與中介層
// 守衛順序即短路語意：先驗證令牌、再檢查角色
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, tokens *service.TokenService) {
	api := e.Group("/api/v1")

	requireAuth := middleware.RequireAuth(db, tokens)
	requireAdmin := middleware.RequireRole(model.RoleAdmin)

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db), requireAuth)

	// 註冊與登入（公開路由，不經過任何守衛）
	api.POST("/auth/signup", auth.SignupHandler(db, tokens))
	api.POST("/auth/signin", auth.SigninHandler(db, tokens))

	apiUsers := api.Group("/users", requireAuth)
	apiUsers.GET("/me", users.GetMeHandler())

	// 列表與單筆查詢限管理員
	apiUsers.GET("", users.ListUsersHandler(db), requireAdmin)
	apiUsers.GET("/:id", users.GetUserHandler(db, rdb), requireAdmin)

	// 更新開放本人嘗試，規則由 service 層判斷；刪除限管理員
	apiUsers.PATCH("/:id", users.UpdateUserHandler(db, rdb))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db, rdb), requireAdmin)
}
