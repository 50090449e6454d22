package service

import (
	"testing"
	"time"

	"identity-api/internal/errs"
	"identity-api/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Cleanup(restoreGlobals)
	svc := NewTokenService("s", time.Minute)
	require.Equal(t, time.Minute, svc.TTL())

	user := model.User{ID: uuid.New(), Email: "ann@x.com"}
	tok, err := svc.Issue(user)
	require.NoError(t, err)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, user.ID.String(), claims.UserID)
	require.Equal(t, "ann@x.com", claims.Email)
	require.Equal(t, user.ID.String(), claims.Subject)
}

func TestVerifyFailures(t *testing.T) {
	t.Cleanup(restoreGlobals)
	svc := NewTokenService("s", time.Minute)
	user := model.User{ID: uuid.New(), Email: "ann@x.com"}

	// 格式錯誤
	_, err := svc.Verify("garbage")
	require.Equal(t, errs.KindInvalidToken, errs.KindOf(err))

	// 簽章不符
	other := NewTokenService("other-secret", time.Minute)
	tok, err := other.Issue(user)
	require.NoError(t, err)
	_, err = svc.Verify(tok)
	require.Equal(t, errs.KindInvalidToken, errs.KindOf(err))

	// alg none
	tokNone, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": "x"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.Verify(tokNone)
	require.Equal(t, errs.KindInvalidToken, errs.KindOf(err))

	// 已過期：TTL 為負值，簽出即過期
	expired := NewTokenService("s", -time.Minute)
	tok, err = expired.Issue(user)
	require.NoError(t, err)
	_, err = svc.Verify(tok)
	require.Equal(t, errs.KindInvalidToken, errs.KindOf(err))

	// Parse 回傳 Valid=false
	parseWithClaims = func(string, jwt.Claims, jwt.Keyfunc, ...jwt.ParserOption) (*jwt.Token, error) {
		return &jwt.Token{Claims: &Claims{}, Valid: false}, nil
	}
	_, err = svc.Verify("whatever")
	require.Equal(t, errs.KindInvalidToken, errs.KindOf(err))
}

func TestIssueEmbedsExpiry(t *testing.T) {
	t.Cleanup(restoreGlobals)
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }

	svc := NewTokenService("s", 15*time.Minute)
	tok, err := svc.Issue(model.User{ID: uuid.New()})
	require.NoError(t, err)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(tok, claims,
		func(*jwt.Token) (any, error) { return []byte("s"), nil },
		jwt.WithTimeFunc(func() time.Time { return now }))
	require.NoError(t, err)
	require.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	require.Equal(t, now.Add(15*time.Minute).Unix(), claims.ExpiresAt.Unix())
}
