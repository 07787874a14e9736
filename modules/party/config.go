package party

import "github.com/dmitrymomot/secretfriend/pkg/cookie"

// Config holds the env-driven module settings. Cookie attributes are read
// from PARTY_COOKIE_*; setting PARTY_COOKIE_SECRETS signs the visitor cookie.
type Config struct {
	CookieName        string        `env:"PARTY_COOKIE_NAME" envDefault:"secretfriend_party" validate:"required"`
	Cookie            cookie.Config `envPrefix:"PARTY_"`
	DatastarScriptURL string        `env:"DATASTAR_SCRIPT_URL" envDefault:"https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js" validate:"required"`
}
