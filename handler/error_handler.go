package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/secretfriend/pkg/logger"
	"github.com/dmitrymomot/secretfriend/pkg/requestid"
)

// ErrorParams is passed to the error views.
type ErrorParams struct {
	StatusCode int
	Message    string
	RequestID  string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// Page renders the error for regular requests. Nil falls back to http.Error.
	Page func(ErrorParams) templ.Component
	// Inline renders the error patch for Datastar requests. Nil sends nothing.
	Inline func(ErrorParams) templ.Component
	// Target is the selector the inline patch applies to. Empty matches by id.
	Target string
}

func classifyError(err error) (int, string) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Message
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// NewErrorHandler logs err at warn for client errors and error otherwise,
// then renders cfg.Page or cfg.Inline depending on the request type.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		status, message := classifyError(err)
		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}

		log.LogAttrs(r.Context(), level, "request failed",
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", IsDataStar(r)),
			logger.Component("error_handler"),
		)

		params := ErrorParams{
			StatusCode: status,
			Message:    message,
			RequestID:  requestid.FromContext(r.Context()),
		}

		var resp Response
		switch {
		case IsDataStar(r) && cfg.Inline != nil:
			var opts []TemplOption
			if cfg.Target != "" {
				opts = append(opts, WithTarget(cfg.Target))
			}
			resp = Templ(cfg.Inline(params), opts...)
		case IsDataStar(r):
			return
		case cfg.Page != nil:
			resp = TemplStatus(status, cfg.Page(params))
		default:
			http.Error(ctx.ResponseWriter(), message, status)
			return
		}

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error",
				logger.Error(renderErr),
				logger.Event("render_error"),
			)
		}
	}
}
