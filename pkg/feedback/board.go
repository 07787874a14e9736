package feedback

import (
	"context"
	"sync"
	"time"
)

// DefaultClearDelay is how long transient messages stay visible.
const DefaultClearDelay = 3 * time.Second

// Option configures a Board.
type Option func(*Board)

// WithClearDelay sets the lifetime of transient messages. Non-positive values
// disable the timed clear.
func WithClearDelay(d time.Duration) Option {
	return func(b *Board) { b.delay = d }
}

// WithBufferSize sets the channel buffer of each subscriber. Minimum is 1.
func WithBufferSize(n int) Option {
	return func(b *Board) { b.bufferSize = max(n, 1) }
}

// Board holds the current message. All methods are safe for concurrent use.
type Board struct {
	mu         sync.Mutex
	current    Message
	timer      *time.Timer
	generation uint64
	delay      time.Duration
	bufferSize int
	subs       map[chan Message]struct{}
	closed     bool
}

// NewBoard returns an empty board.
func NewBoard(opts ...Option) *Board {
	b := &Board{
		delay:      DefaultClearDelay,
		bufferSize: 1,
		subs:       make(map[chan Message]struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Show replaces the current message and cancels any pending clear. Transient
// messages schedule a new clear after the board delay.
func (b *Board) Show(msg Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.set(msg)
	if msg.Transient() && b.delay > 0 {
		gen := b.generation
		b.timer = time.AfterFunc(b.delay, func() { b.expire(gen) })
	}
}

// Clear removes the current message and cancels any pending clear.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.set(Message{})
}

// Current returns the message on display, or the zero Message.
func (b *Board) Current() Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Subscribe returns a channel receiving every change of the board. The
// channel is closed when ctx is done or the board is closed.
func (b *Board) Subscribe(ctx context.Context) <-chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Message, b.bufferSize)
	if b.closed {
		close(ch)
		return ch
	}
	b.subs[ch] = struct{}{}

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			b.unsubscribe(ch)
		}()
	}
	return ch
}

// Close stops the pending clear and closes every subscriber. It is safe to
// call Close more than once.
func (b *Board) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	b.stopTimer()
	for ch := range b.subs {
		close(ch)
	}
	clear(b.subs)
	return nil
}

// set must be called with mu held.
func (b *Board) set(msg Message) {
	b.stopTimer()
	b.generation++
	b.current = msg
	b.publish(msg)
}

func (b *Board) stopTimer() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

// expire clears the board if nothing replaced the message the timer was
// scheduled for. A timer that fired while Show held the lock sees a newer
// generation and does nothing.
func (b *Board) expire(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || gen != b.generation {
		return
	}
	b.timer = nil
	b.generation++
	b.current = Message{}
	b.publish(Message{})
}

func (b *Board) publish(msg Message) {
	for ch := range b.subs {
		select {
		case ch <- msg:
			continue
		default:
		}
		// Buffer full: drop the oldest pending message so the latest state wins.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- msg:
		default:
		}
	}
}

func (b *Board) unsubscribe(ch chan Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
}
