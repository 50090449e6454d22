// File: internal/service/users.go
package service

import (
	"context"

	"identity-api/internal/database"
	"identity-api/internal/errs"
	"identity-api/internal/model"
	"identity-api/internal/pagination"
	"identity-api/internal/store"

	"github.com/google/uuid"
)

// 測試用注入點
var (
	getUserByID = store.GetUserByID
	listUsers   = store.ListUsers
	updateUser  = store.UpdateUser
	deleteUser  = store.DeleteUser
)

// GetUser 依 ID 取得使用者
func GetUser(ctx context.Context, db database.DB, userID uuid.UUID) (*model.User, error) {
	return getUserByID(ctx, db, userID)
}

// ListUsers 取得一頁使用者與分頁中繼資料
// limit、page 由呼叫端驗證 (limit 1..100, page >= 1)
// 超出範圍的頁碼回傳空切片，中繼資料仍反映請求的頁碼
func ListUsers(ctx context.Context, db database.DB, limit, page int) ([]model.User, pagination.Meta, error) {
	users, total, err := listUsers(ctx, db, limit, pagination.Offset(page, limit))
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return users, pagination.NewMeta(page, limit, total), nil
}

// DeleteUser 執行刪除帳號的業務規則，檢查順序是對外契約：
// 1. 目標必須存在            -> NotFound
// 2. 不可刪除自己（含管理員）-> SelfDeletion
// 3. 執行者必須是管理員      -> InsufficientPermissions
// 通過後才委派實際刪除
func DeleteUser(ctx context.Context, db database.DB, requestingID, targetID uuid.UUID, role model.Role) error {
	if _, err := getUserByID(ctx, db, targetID); err != nil {
		return err
	}

	if requestingID == targetID {
		return errs.SelfDeletion()
	}

	if role != model.RoleAdmin {
		return errs.InsufficientPermissions()
	}

	return deleteUser(ctx, db, targetID)
}

// UpdateUser 執行更新帳號的業務規則，檢查順序是對外契約：
// 1. 目標必須存在                      -> NotFound
// 2. 非本人且非管理員                  -> UnauthorizedUpdate
// 3. 變更角色需要管理員（本人也一樣）  -> UnauthorizedUpdate
// 4. Email 不可與其他帳號衝突          -> EmailInUse
// 通過後委派更新並回傳更新後的記錄
func UpdateUser(ctx context.Context, db database.DB, requestingID, targetID uuid.UUID, patch store.UserPatch, role model.Role) (*model.User, error) {
	if _, err := getUserByID(ctx, db, targetID); err != nil {
		return nil, err
	}

	if requestingID != targetID && role != model.RoleAdmin {
		return nil, errs.UnauthorizedUpdate()
	}

	if patch.Role != nil && role != model.RoleAdmin {
		return nil, errs.UnauthorizedUpdate()
	}

	if patch.Email != nil {
		existing, err := getUserByEmail(ctx, db, *patch.Email)
		switch {
		case err == nil && existing.ID != targetID:
			return nil, errs.EmailInUse(*patch.Email)
		case err != nil && errs.KindOf(err) != errs.KindNotFound:
			return nil, err
		}
	}

	return updateUser(ctx, db, targetID, patch)
}
