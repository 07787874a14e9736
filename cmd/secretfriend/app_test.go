package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/secretfriend/pkg/config"
	"github.com/dmitrymomot/secretfriend/pkg/cookie"
	"github.com/dmitrymomot/secretfriend/pkg/logger"
	"github.com/dmitrymomot/secretfriend/pkg/requestid"
	partysvc "github.com/dmitrymomot/secretfriend/svc/party"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	var cfg Config
	require.NoError(t, config.Load(&cfg))
	return cfg
}

func TestConfigDefaults(t *testing.T) {
	cfg := testConfig(t)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Zero(t, cfg.HTTP.WriteTimeout)
	assert.Equal(t, 2, cfg.Party.MinParticipants)
	assert.Equal(t, 1024, cfg.Party.Capacity)
	assert.Equal(t, "secretfriend_party", cfg.Module.CookieName)
	assert.Equal(t, "/", cfg.Module.Cookie.Path)
	assert.True(t, cfg.Module.Cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cfg.Module.Cookie.SameSite)
	assert.Empty(t, cfg.Module.Cookie.Secrets)
}

func TestConfigCookieEnv(t *testing.T) {
	t.Setenv("PARTY_COOKIE_SECURE", "true")
	t.Setenv("PARTY_COOKIE_SECRETS", "this-is-a-very-long-secret-key-32-chars-long")
	cfg := testConfig(t)

	assert.True(t, cfg.Module.Cookie.Secure)
	cookies, err := cookie.NewFromConfig(cfg.Module.Cookie)
	require.NoError(t, err)
	assert.True(t, cookies.Signed())
}

func TestConfigRejectsUnknownEnv(t *testing.T) {
	t.Setenv("APP_ENV", "moon")
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	var cfg Config
	assert.ErrorIs(t, config.Load(&cfg), config.ErrInvalidConfig)
}

func TestRouter(t *testing.T) {
	cfg := testConfig(t)
	reg, err := partysvc.NewRegistry(cfg.Party, nil)
	require.NoError(t, err)
	cookies, err := cookie.NewFromConfig(cfg.Module.Cookie)
	require.NoError(t, err)

	srv := httptest.NewServer(newRouter(cfg, reg, cookies, logger.Discard()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(requestid.Header))

	resp, err = http.Get(srv.URL + "/")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))

	resp, err = http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, reg.Close())
	resp, err = http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
