// Package draw picks uniformly distributed indexes for roster draws.
//
// Draws use math/rand/v2 and are not meant to be unpredictable against an
// adversary; they only need to be fair. Every call is independent, the same
// index can come up twice in a row.
//
//	d := draw.New()
//	i, err := d.Index(len(names))
//
// Tests that need repeatable results seed the generator:
//
//	d := draw.New(draw.WithSeed(42))
package draw

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
)

// ErrInvalidSize is returned when the pool size is not positive.
var ErrInvalidSize = errors.New("draw: pool size must be positive")

// Source produces integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Option configures a Drawer.
type Option func(*Drawer)

// WithSource uses src for every draw. Nil is ignored.
func WithSource(src Source) Option {
	return func(d *Drawer) {
		if src != nil {
			d.src = src
		}
	}
}

// WithSeed uses a PCG generator seeded with seed, making draws reproducible.
func WithSeed(seed uint64) Option {
	return func(d *Drawer) {
		d.src = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// Drawer returns uniformly distributed indexes. It is safe for concurrent use.
type Drawer struct {
	mu  sync.Mutex
	src Source
}

// New returns a Drawer. Without options it uses the auto-seeded global
// generator of math/rand/v2.
func New(opts ...Option) *Drawer {
	d := &Drawer{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Index returns a value uniformly distributed over [0, n).
func (d *Drawer) Index(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	if d.src == nil {
		return rand.IntN(n), nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.src.IntN(n), nil
}

// NewSeed returns a seed read from crypto/rand. The party registry uses it
// to give every party a private generator.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
