// Package cookie wraps net/http cookies with per-manager defaults and
// optional HMAC-SHA256 signing.
//
// A Manager is built from a list of secrets and default Options. Without
// secrets it writes and reads plain cookies only; SetSigned and GetSigned
// then fail with ErrNoSecret. With secrets, the first one signs new values
// and every one is tried on read, so keys can be rotated by prepending a new
// secret.
//
//	m, err := cookie.NewFromConfig(cfg, cookie.WithSecure(true))
//	if err != nil {
//		return err
//	}
//	_ = m.SetSigned(w, "visitor", id)
//	id, err := m.GetSigned(r, "visitor")
//
// Signed values have the form base64url(value) + "|" + base64url(mac).
package cookie
