// File: internal/model/role.go
package model

// Role 使用者角色，封閉列舉
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// roleRank 角色位階表，admin > user
// 授權判斷與帳號異動規則共用同一份表
var roleRank = map[Role]int{
	RoleAdmin: 2,
	RoleUser:  1,
}

// Rank 回傳角色位階，未知角色為 0
func (r Role) Rank() int {
	return roleRank[r]
}

// Valid 回報是否為已定義的角色
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// Authorize 判斷 caller 是否達到 required 的最低位階
// required 為空字串表示該路由不設角色限制
func Authorize(required, caller Role) bool {
	if required == "" {
		return true
	}
	return caller.Rank() >= required.Rank()
}
