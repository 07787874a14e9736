package party

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/secretfriend/handler"
	"github.com/dmitrymomot/secretfriend/pkg/logger"
)

var visitorKey = handler.NewContextKey("visitor")

// VisitorID returns the visitor ID set by the module middleware.
func VisitorID(ctx context.Context) string {
	return handler.ContextValue[string](ctx, visitorKey)
}

// readVisitor returns the visitor ID stored in the cookie, or "" when the
// cookie is missing, unsigned while signing is on, or not a UUID.
func (s *Service) readVisitor(r *http.Request) string {
	get := s.cookies.Get
	if s.cookies.Signed() {
		get = s.cookies.GetSigned
	}
	value, err := get(r, s.cfg.CookieName)
	if err != nil {
		return ""
	}
	parsed, err := uuid.Parse(value)
	if err != nil {
		return ""
	}
	return parsed.String()
}

func (s *Service) writeVisitor(w http.ResponseWriter, id string) error {
	if s.cookies.Signed() {
		return s.cookies.SetSigned(w, s.cfg.CookieName, id)
	}
	return s.cookies.Set(w, s.cfg.CookieName, id)
}

func (s *Service) visitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := s.readVisitor(r)
		if id == "" {
			id = uuid.NewString()
			if err := s.writeVisitor(w, id); err != nil {
				s.log.ErrorContext(r.Context(), "set visitor cookie", logger.Error(err))
			}
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), visitorKey, id)))
	})
}
