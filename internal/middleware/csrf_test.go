package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/justinas/nosurf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bookings/internal/config"
)

func csrfRouter(cfg *config.AppConfig) http.Handler {
	router := gin.New()
	router.GET("/token", func(c *gin.Context) {
		c.String(http.StatusOK, nosurf.Token(c.Request))
	})
	router.POST("/search-json", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return CSRF(router, cfg, zap.NewNop())
}

func TestCSRF_RejectsMissingToken(t *testing.T) {
	h := csrfRouter(&config.AppConfig{CookieSameSite: "Lax"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/search-json", strings.NewReader("start=2030-05-01"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"ok":false,"message":"Invalid CSRF token"}`, w.Body.String())
}

func TestCSRF_AcceptsFormToken(t *testing.T) {
	h := csrfRouter(&config.AppConfig{CookieSameSite: "Strict", CookieSecure: true})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/token", nil))
	require.Equal(t, http.StatusOK, w.Code)
	token := w.Body.String()
	require.NotEmpty(t, token)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)

	form := url.Values{"start": {"2030-05-01"}, "csrf_token": {token}}
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/search-json", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookies[0])
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}
