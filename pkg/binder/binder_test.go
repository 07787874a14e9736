package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/secretfriend/pkg/binder"
)

type friendForm struct {
	Name    string `form:"name" json:"name"`
	Count   int    `form:"count" json:"count"`
	Confirm bool   `json:"confirm"`
	Secret  string `form:"-" json:"-"`
	hidden  string
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/friends", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("binds tagged and untagged fields", func(t *testing.T) {
		t.Parallel()

		var got friendForm
		req := formRequest(url.Values{
			"name":    {"  ana  "},
			"count":   {"3"},
			"confirm": {"on"},
			"Secret":  {"x"},
		})
		require.NoError(t, binder.Form()(req, &got))

		assert.Equal(t, "  ana  ", got.Name)
		assert.Equal(t, 3, got.Count)
		assert.True(t, got.Confirm)
		assert.Empty(t, got.Secret)
		assert.Empty(t, got.hidden)
	})

	t.Run("missing field keeps zero value", func(t *testing.T) {
		t.Parallel()

		var got friendForm
		require.NoError(t, binder.Form()(formRequest(url.Values{}), &got))
		assert.Equal(t, friendForm{}, got)
	})

	t.Run("other content types are not applicable", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/friends", strings.NewReader(`{"name":"ana"}`))
		req.Header.Set("Content-Type", "application/json")
		var got friendForm
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("bad integer", func(t *testing.T) {
		t.Parallel()

		var got friendForm
		err := binder.Form()(formRequest(url.Values{"count": {"many"}}), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})

	t.Run("invalid target", func(t *testing.T) {
		t.Parallel()

		var got friendForm
		assert.ErrorIs(t, binder.Form()(formRequest(url.Values{"name": {"a"}}), got), binder.ErrInvalidTarget)
	})
}

func TestSignals(t *testing.T) {
	t.Parallel()

	t.Run("reads the JSON body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/friends", strings.NewReader(`{"name":"Bruno","count":2}`))
		req.Header.Set("Datastar-Request", "true")
		req.Header.Set("Content-Type", "application/json")

		var got friendForm
		require.NoError(t, binder.Signals()(req, &got))
		assert.Equal(t, "Bruno", got.Name)
		assert.Equal(t, 2, got.Count)
	})

	t.Run("reads the query on GET", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/feedback?datastar="+url.QueryEscape(`{"name":"Ana"}`), nil)
		req.Header.Set("Datastar-Request", "true")

		var got friendForm
		require.NoError(t, binder.Signals()(req, &got))
		assert.Equal(t, "Ana", got.Name)
	})

	t.Run("plain form post is not applicable", func(t *testing.T) {
		t.Parallel()

		var got friendForm
		assert.ErrorIs(t, binder.Signals()(formRequest(url.Values{"name": {"a"}}), &got), binder.ErrBinderNotApplicable)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/friends", strings.NewReader(`{"name":`))
		req.Header.Set("Datastar-Request", "true")

		var got friendForm
		assert.ErrorIs(t, binder.Signals()(req, &got), binder.ErrFailedToReadSignals)
	})
}
