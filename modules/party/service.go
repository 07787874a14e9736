package party

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/dmitrymomot/secretfriend/handler"
	"github.com/dmitrymomot/secretfriend/pkg/binder"
	"github.com/dmitrymomot/secretfriend/pkg/cookie"
	"github.com/dmitrymomot/secretfriend/pkg/logger"
	"github.com/dmitrymomot/secretfriend/pkg/roster"
	partysvc "github.com/dmitrymomot/secretfriend/svc/party"
)

const focusScript = "document.getElementById('" + InputID + "')?.focus()"

// Registry resolves a visitor ID to its party.
type Registry interface {
	Get(id string) (*partysvc.Party, error)
}

// Service wires the party controller to HTTP.
type Service struct {
	cfg          Config
	registry     Registry
	views        *Views
	cookies      *cookie.Manager
	errorHandler handler.ErrorHandler[handler.Context]
	log          *slog.Logger
}

// NewService returns the page service. A nil cookies manager writes
// unsigned visitor cookies with the manager defaults. A nil errorHandler uses
// handler.NewErrorHandler without views.
func NewService(
	cfg Config,
	registry Registry,
	views *Views,
	cookies *cookie.Manager,
	errorHandler handler.ErrorHandler[handler.Context],
	log *slog.Logger,
) *Service {
	if log == nil {
		log = logger.Discard()
	}
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})
	}
	if cookies == nil {
		cookies = lo.Must(cookie.New(nil))
	}
	return &Service{
		cfg:          cfg,
		registry:     registry,
		views:        views,
		cookies:      cookies,
		errorHandler: errorHandler,
		log:          log.With(logger.Component("party_module")),
	}
}

// Handle returns the module router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(s.visitor)

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Post("/friends", handler.Wrap(s.addFriend,
		handler.WithBinders[handler.Context, AddFriendRequest](
			binder.Signals(), // datastar @post
			binder.Form(),    // plain form post
		),
		handler.WithErrorHandler[handler.Context, AddFriendRequest](s.errorHandler),
	))
	r.Post("/draw", handler.Wrap(s.draw,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Post("/reset", handler.Wrap(s.reset,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Get("/feedback", handler.Wrap(s.feedback,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	return r
}

// AddFriendRequest is the add form, either as signals or form fields.
type AddFriendRequest struct {
	Name string `form:"name" json:"name"`
}

func (s *Service) party(ctx handler.Context) (*partysvc.Party, error) {
	p, err := s.registry.Get(VisitorID(ctx))
	if errors.Is(err, partysvc.ErrRegistryClosed) {
		return nil, handler.NewHTTPError(http.StatusServiceUnavailable, "service is shutting down")
	}
	return p, err
}

func (s *Service) page(ctx handler.Context, _ struct{}) handler.Response {
	p, err := s.party(ctx)
	if err != nil {
		return handler.Error(err)
	}
	return handler.Templ(s.views.Page(PageParams{
		Names:             p.Names(),
		Feedback:          p.Feedback(),
		MinParticipants:   p.MinParticipants(),
		DatastarScriptURL: s.cfg.DatastarScriptURL,
	}))
}

func (s *Service) addFriend(ctx handler.Context, req AddFriendRequest) handler.Response {
	p, err := s.party(ctx)
	if err != nil {
		return handler.Error(err)
	}
	out, err := p.AddFriend(ctx, req.Name)
	if err != nil && !isRosterError(err) {
		return handler.Error(err)
	}
	return s.patch(out)
}

func (s *Service) draw(ctx handler.Context, _ struct{}) handler.Response {
	p, err := s.party(ctx)
	if err != nil {
		return handler.Error(err)
	}
	out, err := p.Draw(ctx)
	if err != nil && !isRosterError(err) {
		return handler.Error(err)
	}
	return s.patch(out)
}

func (s *Service) reset(ctx handler.Context, _ struct{}) handler.Response {
	p, err := s.party(ctx)
	if err != nil {
		return handler.Error(err)
	}
	return s.patch(p.Reset(ctx))
}

func (s *Service) feedback(ctx handler.Context, _ struct{}) handler.Response {
	p, err := s.party(ctx)
	if err != nil {
		return handler.Error(err)
	}
	return handler.SSE(func(stream handler.StreamContext) error {
		updates := p.Subscribe(stream)
		if err := stream.SendComponent(s.views.Feedback(FeedbackParams{Message: p.Feedback()})); err != nil {
			return err
		}
		for msg := range updates {
			if err := stream.SendComponent(s.views.Feedback(FeedbackParams{Message: msg})); err != nil {
				return err
			}
		}
		s.log.DebugContext(stream, "feedback stream closed", logger.PartyID(p.ID()))
		return nil
	})
}

// patch redraws the roster and feedback and applies the input action.
func (s *Service) patch(out partysvc.Outcome) handler.Response {
	patches := []handler.PatchFunc{
		handler.Element(s.views.Roster(RosterParams{Names: out.Names})),
		handler.Element(s.views.Feedback(FeedbackParams{Message: out.Feedback})),
	}
	switch out.Input {
	case partysvc.InputClearAndFocus:
		patches = append(patches,
			handler.Signals(map[string]any{InputID: ""}),
			handler.Script(focusScript),
		)
	case partysvc.InputRefocus:
		patches = append(patches, handler.Script(focusScript))
	}
	return handler.Patches(handler.Redirect("/"), patches...)
}

var rosterErrors = []error{
	roster.ErrBlankInput,
	roster.ErrDuplicateName,
	roster.ErrEmptyRoster,
	roster.ErrInsufficientRoster,
}

// isRosterError reports whether err is a user-facing rejection already
// shown on the feedback board.
func isRosterError(err error) bool {
	return lo.ContainsBy(rosterErrors, func(target error) bool { return errors.Is(err, target) })
}
