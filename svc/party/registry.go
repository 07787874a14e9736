package party

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/dmitrymomot/secretfriend/pkg/cache"
	"github.com/dmitrymomot/secretfriend/pkg/draw"
	"github.com/dmitrymomot/secretfriend/pkg/logger"
)

// Registry maps visitor IDs to parties. Safe for concurrent use.
type Registry struct {
	parties *cache.LRU[string, *Party]
	opts    []Option
	log     *slog.Logger
	closed  atomic.Bool
}

// NewRegistry returns a registry holding at most cfg.Capacity parties. Each
// party gets its own drawer seeded from crypto/rand. opts are applied to
// every party it creates, after the config-derived ones and the drawer.
func NewRegistry(cfg Config, log *slog.Logger, opts ...Option) (*Registry, error) {
	if log == nil {
		log = logger.Discard()
	}
	msgs, err := LoadMessages(cfg.MessagesFile)
	if err != nil {
		return nil, err
	}

	r := &Registry{
		log: log.With(logger.Component("party_registry")),
		opts: append([]Option{
			WithMessages(msgs),
			WithMinParticipants(cfg.MinParticipants),
			WithFeedbackTTL(cfg.FeedbackTTL),
			WithLogger(log),
		}, opts...),
	}
	r.parties = cache.NewLRU(max(cfg.Capacity, 1), cache.WithEvictFunc(func(id string, p *Party) {
		if err := p.Close(); err != nil {
			r.log.Error("failed to close evicted party", logger.PartyID(id), logger.Error(err))
			return
		}
		r.log.Debug("party closed", logger.PartyID(id))
	}))
	return r, nil
}

// Get returns the party for id, creating an empty one on first use.
func (r *Registry) Get(id string) (*Party, error) {
	if r.closed.Load() {
		return nil, ErrRegistryClosed
	}
	p, existed := r.parties.GetOrAdd(id, func() *Party { return r.create(id) })

	// Close may have purged the cache between the check above and GetOrAdd.
	if r.closed.Load() {
		r.parties.Remove(id)
		_ = p.Close()
		return nil, ErrRegistryClosed
	}
	if !existed {
		r.log.Debug("party created", logger.PartyID(id))
	}
	return p, nil
}

func (r *Registry) create(id string) *Party {
	seed, err := draw.NewSeed()
	if err != nil {
		r.log.Warn("party uses shared drawer", logger.PartyID(id), logger.Error(err))
		return New(id, r.opts...)
	}
	opts := append([]Option{WithDrawer(draw.New(draw.WithSeed(seed)))}, r.opts...)
	return New(id, opts...)
}

// Remove closes and forgets the party for id.
func (r *Registry) Remove(id string) bool {
	return r.parties.Remove(id)
}

// Len returns the number of live parties.
func (r *Registry) Len() int {
	return r.parties.Len()
}

// Ping reports ErrRegistryClosed once the registry has been closed.
func (r *Registry) Ping(context.Context) error {
	if r.closed.Load() {
		return ErrRegistryClosed
	}
	return nil
}

// Close closes every party. Later Get calls fail with ErrRegistryClosed.
func (r *Registry) Close() error {
	if r.closed.Swap(true) {
		return nil
	}
	r.parties.Purge()
	return nil
}
