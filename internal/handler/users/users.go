package users

import (
	"identity-api/internal/service"
)

// 測試用注入點
var (
	getUser       = service.GetUser
	listUsers     = service.ListUsers
	updateUser    = service.UpdateUser
	deleteUserSvc = service.DeleteUser
)

const userCacheKeyPrefix = "user:"
