package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"identity-api/internal/database"
	"identity-api/internal/errs"
	"identity-api/internal/model"
	"identity-api/internal/service"
	"identity-api/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restoreGlobals() {
	getUserByID = store.GetUserByID
}

func newContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okNext(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequireAuth(t *testing.T) {
	tokens := service.NewTokenService("s", time.Minute)
	account := &model.User{ID: uuid.New(), Email: "ann@x.com", Role: model.RoleUser}

	issue := func(t *testing.T, u model.User) string {
		tok, err := tokens.Issue(u)
		require.NoError(t, err)
		return tok
	}

	t.Run("success loads user into context", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getUserByID = func(_ context.Context, _ database.DB, id uuid.UUID) (*model.User, error) {
			require.Equal(t, account.ID, id)
			return account, nil
		}
		c, rec := newContext("Bearer " + issue(t, *account))

		next := func(c echo.Context) error {
			user, ok := CurrentUser(c)
			require.True(t, ok)
			require.Equal(t, account, user)
			return c.NoContent(http.StatusOK)
		}
		err := RequireAuth(&database.FakeDB{}, tokens)(next)(c)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		c, _ := newContext("")
		err := RequireAuth(&database.FakeDB{}, tokens)(okNext)(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusUnauthorized, httpErr.Code)
		require.Equal(t, "missing token", httpErr.Message)
	})

	t.Run("malformed header", func(t *testing.T) {
		c, _ := newContext("Basic abc")
		err := RequireAuth(&database.FakeDB{}, tokens)(okNext)(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusUnauthorized, httpErr.Code)
		require.Equal(t, "invalid authorization header format", httpErr.Message)
	})

	t.Run("invalid token", func(t *testing.T) {
		c, _ := newContext("Bearer garbage")
		err := RequireAuth(&database.FakeDB{}, tokens)(okNext)(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := service.NewTokenService("s", -time.Minute)
		tok, err := expired.Issue(*account)
		require.NoError(t, err)
		c, _ := newContext("Bearer " + tok)
		authErr := RequireAuth(&database.FakeDB{}, tokens)(okNext)(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, authErr, &httpErr)
		require.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("account deleted after issuance", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getUserByID = func(_ context.Context, _ database.DB, id uuid.UUID) (*model.User, error) {
			return nil, errs.NotFound(id.String())
		}
		c, _ := newContext("Bearer " + issue(t, *account))
		err := RequireAuth(&database.FakeDB{}, tokens)(okNext)(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusUnauthorized, httpErr.Code)
		require.Equal(t, "user does not exist", httpErr.Message)
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("admin passes admin gate", func(t *testing.T) {
		c, rec := newContext("")
		c.Set(ContextUserKey, &model.User{Role: model.RoleAdmin})
		err := RequireRole(model.RoleAdmin)(okNext)(c)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("user blocked by admin gate", func(t *testing.T) {
		c, _ := newContext("")
		c.Set(ContextUserKey, &model.User{Role: model.RoleUser})
		err := RequireRole(model.RoleAdmin)(okNext)(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusForbidden, httpErr.Code)
		require.Equal(t, "insufficient role", httpErr.Message)
	})

	t.Run("user passes user gate", func(t *testing.T) {
		c, rec := newContext("")
		c.Set(ContextUserKey, &model.User{Role: model.RoleUser})
		err := RequireRole(model.RoleUser)(okNext)(c)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing user treated as unauthenticated", func(t *testing.T) {
		c, _ := newContext("")
		err := RequireRole(model.RoleAdmin)(okNext)(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}

func TestCurrentUser(t *testing.T) {
	c, _ := newContext("")
	_, ok := CurrentUser(c)
	require.False(t, ok)

	c.Set(ContextUserKey, &model.User{Name: "Ann"})
	user, ok := CurrentUser(c)
	require.True(t, ok)
	require.Equal(t, "Ann", user.Name)
}
