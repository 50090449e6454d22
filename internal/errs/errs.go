// File: internal/errs/errs.go
package errs

import (
	"errors"
	"fmt"
)

// Kind 區分業務錯誤的種類，handler 據此對應 HTTP 狀態碼
type Kind int

const (
	KindUnknown Kind = iota
	KindDuplicateIdentity
	KindInvalidCredentials
	KindInvalidToken
	KindNotFound
	KindSelfDeletion
	KindInsufficientPermissions
	KindUnauthorizedUpdate
	KindEmailInUse
)

// Error 單一帶標籤的業務錯誤型別 (kind + message)
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf 取出錯誤的 Kind，包含被 %w 包裹的情況；非 *Error 回傳 KindUnknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func DuplicateIdentity(email string) *Error {
	return &Error{Kind: KindDuplicateIdentity, Message: fmt.Sprintf("Email %s is already in use", email)}
}

func InvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Message: "Invalid credentials provided"}
}

func InvalidToken() *Error {
	return &Error{Kind: KindInvalidToken, Message: "invalid token"}
}

func NotFound(id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("User with ID %s not found", id)}
}

func SelfDeletion() *Error {
	return &Error{Kind: KindSelfDeletion, Message: "You cannot delete yourself"}
}

func InsufficientPermissions() *Error {
	return &Error{Kind: KindInsufficientPermissions, Message: "You do not have permission to delete users"}
}

func UnauthorizedUpdate() *Error {
	return &Error{Kind: KindUnauthorizedUpdate, Message: "You are not authorized to update this user"}
}

func EmailInUse(email string) *Error {
	return &Error{Kind: KindEmailInUse, Message: fmt.Sprintf("Email %s is already in use", email)}
}
