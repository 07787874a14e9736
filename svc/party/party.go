package party

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/secretfriend/pkg/draw"
	"github.com/dmitrymomot/secretfriend/pkg/feedback"
	"github.com/dmitrymomot/secretfriend/pkg/logger"
	"github.com/dmitrymomot/secretfriend/pkg/roster"
)

// InputAction tells the view what to do with the name input after an
// operation.
type InputAction int

const (
	// InputKeep leaves the input alone.
	InputKeep InputAction = iota
	// InputRefocus keeps the text and focuses the input.
	InputRefocus
	// InputClearAndFocus empties the input and focuses it.
	InputClearAndFocus
)

// Outcome is what a view needs to redraw after an operation.
type Outcome struct {
	// Name is the stored or drawn friend. Empty on rejection.
	Name     string
	Input    InputAction
	Names    []string
	Feedback feedback.Message
}

// Drawer picks a uniform index in [0, n).
type Drawer interface {
	Index(n int) (int, error)
}

// Option configures a Party.
type Option func(*Party)

// WithDrawer replaces the default random drawer.
func WithDrawer(d Drawer) Option {
	return func(p *Party) {
		if d != nil {
			p.drawer = d
		}
	}
}

// WithMessages sets the message catalog.
func WithMessages(m Messages) Option {
	return func(p *Party) { p.messages = m }
}

// WithMinParticipants sets how many friends a draw needs. Values below 1 are ignored.
func WithMinParticipants(n int) Option {
	return func(p *Party) {
		if n >= 1 {
			p.min = n
		}
	}
}

// WithFeedbackTTL sets how long error messages stay on the board. Zero keeps
// the default and a negative value disables the timed clear.
func WithFeedbackTTL(d time.Duration) Option {
	return func(p *Party) {
		if d != 0 {
			p.ttl = d
		}
	}
}

// WithLogger sets the party logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Party) {
		if l != nil {
			p.log = l
		}
	}
}

// Party is one roster with its feedback board.
type Party struct {
	id       string
	mu       sync.Mutex
	roster   *roster.Roster
	board    *feedback.Board
	drawer   Drawer
	messages Messages
	min      int
	ttl      time.Duration
	log      *slog.Logger
}

// New returns an empty party identified by id.
func New(id string, opts ...Option) *Party {
	p := &Party{
		id:       id,
		roster:   roster.New(),
		drawer:   draw.New(),
		messages: DefaultMessages(),
		min:      roster.MinParticipants,
		ttl:      feedback.DefaultClearDelay,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.board = feedback.NewBoard(feedback.WithClearDelay(p.ttl))
	p.log = p.log.With(logger.PartyID(id), logger.Component("party"))
	return p
}

// ID returns the party identifier.
func (p *Party) ID() string { return p.id }

// AddFriend validates input and appends its title-cased form. Blank input
// fails with roster.ErrBlankInput and keeps the input text; a duplicate fails
// with roster.ErrDuplicateName and clears it.
func (p *Party) AddFriend(ctx context.Context, input string) (Outcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	name, err := p.roster.Add(input)
	switch {
	case errors.Is(err, roster.ErrBlankInput):
		p.board.Show(feedback.Error(p.messages.EmptyField))
		p.log.DebugContext(ctx, "friend rejected", logger.Error(err))
		return p.outcome("", InputRefocus), err
	case errors.Is(err, roster.ErrDuplicateName):
		p.board.Show(feedback.Error(p.messages.Duplicate))
		p.log.DebugContext(ctx, "friend rejected", logger.Error(err), logger.Friend(input))
		return p.outcome("", InputClearAndFocus), err
	case err != nil:
		return p.outcome("", InputKeep), err
	}

	p.log.InfoContext(ctx, "friend added", logger.Friend(name), logger.RosterSize(p.roster.Len()))
	return p.outcome(name, InputClearAndFocus), nil
}

// Draw picks one friend uniformly at random and shows the result. The roster
// is left untouched and consecutive draws may repeat.
func (p *Party) Draw(ctx context.Context) (Outcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	names := p.roster.Names()
	if err := roster.CheckDraw(names, p.min); err != nil {
		if errors.Is(err, roster.ErrEmptyRoster) {
			p.board.Show(feedback.Error(p.messages.emptyRoster(p.min)))
		} else {
			p.board.Show(feedback.Error(p.messages.notEnough(p.min)))
		}
		p.log.DebugContext(ctx, "draw rejected", logger.Error(err), logger.RosterSize(len(names)))
		return p.outcome("", InputKeep), err
	}

	i, err := p.drawer.Index(len(names))
	if err != nil {
		return p.outcome("", InputKeep), errors.Join(ErrDraw, err)
	}
	if i < 0 || i >= len(names) {
		return p.outcome("", InputKeep), errors.Join(ErrDraw, draw.ErrInvalidSize)
	}

	winner := names[i]
	p.board.Show(feedback.Success(p.messages.result(winner)))
	p.log.InfoContext(ctx, "friend drawn", logger.DrawIndex(i), logger.RosterSize(len(names)))
	return p.outcome(winner, InputKeep), nil
}

// Reset empties the roster and the feedback board.
func (p *Party) Reset(ctx context.Context) Outcome {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.roster.Clear()
	p.board.Clear()
	p.log.InfoContext(ctx, "party reset")
	return p.outcome("", InputClearAndFocus)
}

// Names returns a snapshot of the roster.
func (p *Party) Names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.roster.Names()
}

// Feedback returns the message currently on the board.
func (p *Party) Feedback() feedback.Message {
	return p.board.Current()
}

// Subscribe streams board changes until ctx is done or the party is closed.
func (p *Party) Subscribe(ctx context.Context) <-chan feedback.Message {
	return p.board.Subscribe(ctx)
}

// MinParticipants returns how many friends a draw needs.
func (p *Party) MinParticipants() int { return p.min }

// Close stops the board timer and ends every subscription.
func (p *Party) Close() error {
	return p.board.Close()
}

// Must be called with the lock held.
func (p *Party) outcome(name string, input InputAction) Outcome {
	return Outcome{
		Name:     name,
		Input:    input,
		Names:    p.roster.Names(),
		Feedback: p.board.Current(),
	}
}
