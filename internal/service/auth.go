// File: internal/service/auth.go
package service

import (
	"context"
	"strings"

	"identity-api/internal/database"
	"identity-api/internal/errs"
	"identity-api/internal/model"
	"identity-api/internal/store"
)

// 測試用注入點
var (
	getUserByEmail = store.GetUserByEmail
	createUser     = store.CreateUser
)

// SignUp 註冊新帳號並簽發存取令牌
// Email 先轉小寫再預查重複（快速路徑）；真正的唯一性由資料庫
// 唯一索引保證，撞索引時 store 端同樣回傳 DuplicateIdentity
func SignUp(ctx context.Context, db database.DB, tokens *TokenService, name, email, password string, role model.Role) (*model.User, string, error) {
	email = strings.ToLower(email)

	if _, err := getUserByEmail(ctx, db, email); err == nil {
		return nil, "", errs.DuplicateIdentity(email)
	} else if errs.KindOf(err) != errs.KindNotFound {
		return nil, "", err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user, err := createUser(ctx, db, &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := tokens.Issue(*user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// SignIn 驗證帳密並簽發存取令牌
// 查無帳號與密碼不符回傳同一個 InvalidCredentials，避免帳號枚舉
func SignIn(ctx context.Context, db database.DB, tokens *TokenService, email, password string) (*model.User, string, error) {
	email = strings.ToLower(email)

	user, err := getUserByEmail(ctx, db, email)
	if err != nil {
		if errs.KindOf(err) == errs.KindNotFound {
			return nil, "", errs.InvalidCredentials()
		}
		return nil, "", err
	}

	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", errs.InvalidCredentials()
	}

	token, err := tokens.Issue(*user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
