// File: internal/service/token.go
package service

import (
	"time"

	"identity-api/internal/errs"
	"identity-api/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// 測試用注入點
var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// Claims 定義 JWT 負載內容，只攜帶最小識別資料
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService 簽發與驗證存取令牌
// 簽章密鑰於啟動時注入一次，之後唯讀，可安全併發使用
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService 以明確注入的密鑰與 TTL 建立 TokenService
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// TTL 回傳令牌有效期間
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue 簽發 HS256 令牌，到期時間為 now + ttl
func (s *TokenService) Issue(user model.User) (string, error) {
	now := timeNow()
	claims := Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify 驗證並解析令牌
// 格式錯誤、簽章不符、過期一律回傳同一個 InvalidToken，不洩漏失敗原因
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := parseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.InvalidToken()
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errs.InvalidToken()
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errs.InvalidToken()
	}

	return claims, nil
}
