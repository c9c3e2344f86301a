package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testIssuer accepts one key and the tokens it has issued.
type testIssuer struct {
	key    string
	issued map[string]bool
}

func newTestIssuer(key string) *testIssuer {
	return &testIssuer{key: key, issued: map[string]bool{}}
}

func (i *testIssuer) IssueToken(key string) (string, error) {
	if key != i.key {
		return "", ErrInvalidKey
	}
	token := fmt.Sprintf("token-%d", len(i.issued)+1)
	i.issued[token] = true
	return token, nil
}

func (i *testIssuer) ValidateToken(token string) error {
	if !i.issued[token] {
		return fmt.Errorf("invalid token")
	}
	return nil
}

func protected(t *testing.T, issuer TokenIssuer) (http.Handler, *bool) {
	t.Helper()
	called := false
	h := AdminAuth(issuer, CookieOptions{Secure: true, TTL: 720 * time.Hour})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		}))
	return h, &called
}

func TestAdminAuth_KeyIssuesCookie(t *testing.T) {
	issuer := newTestIssuer("open-sesame")
	h, called := protected(t, issuer)

	req := httptest.NewRequest(http.MethodGet, "/admin/profiles?key=open-sesame", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *called)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, AdminCookieName, c.Name)
	assert.Equal(t, "token-1", c.Value)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, 720*3600, c.MaxAge)
	assert.Equal(t, "/", c.Path)
}

func TestAdminAuth_ValidCookie(t *testing.T) {
	issuer := newTestIssuer("open-sesame")
	token, err := issuer.IssueToken("open-sesame")
	require.NoError(t, err)
	h, called := protected(t, issuer)

	req := httptest.NewRequest(http.MethodGet, "/admin/profiles", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: token})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *called)
	assert.Empty(t, w.Result().Cookies(), "no new cookie for an existing session")
}

func TestAdminAuth_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		target string
		cookie string
	}{
		{"nothing presented", "/admin/profiles", ""},
		{"wrong key", "/admin/profiles?key=guess", ""},
		{"forged cookie", "/admin/profiles", "forged"},
		{"forged cookie and wrong key", "/admin/profiles?key=guess", "forged"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, called := protected(t, newTestIssuer("open-sesame"))
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, *called)
			assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
		})
	}
}

func TestAdminAuth_StaleCookieWithKey(t *testing.T) {
	h, called := protected(t, newTestIssuer("open-sesame"))

	req := httptest.NewRequest(http.MethodGet, "/admin/profiles?key=open-sesame", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: "expired"})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *called)
	require.Len(t, w.Result().Cookies(), 1)
}
