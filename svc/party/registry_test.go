package party_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/secretfriend/svc/party"
)

func newRegistry(t *testing.T, capacity int) *party.Registry {
	t.Helper()
	r, err := party.NewRegistry(party.Config{MinParticipants: 2, FeedbackTTL: time.Second, Capacity: capacity}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestRegistryIsolatesVisitors(t *testing.T) {
	t.Parallel()

	r := newRegistry(t, 8)
	a, err := r.Get("a")
	require.NoError(t, err)
	b, err := r.Get("b")
	require.NoError(t, err)

	_, err = a.AddFriend(context.Background(), "ana")
	require.NoError(t, err)

	again, err := r.Get("a")
	require.NoError(t, err)
	assert.Same(t, a, again)
	assert.Equal(t, []string{"Ana"}, again.Names())
	assert.Empty(t, b.Names())
	assert.Equal(t, 2, r.Len())
}

func TestRegistryEvictionClosesParty(t *testing.T) {
	t.Parallel()

	r := newRegistry(t, 1)
	first, err := r.Get("first")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	updates := first.Subscribe(ctx)

	_, err = r.Get("second")
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())

	select {
	case _, ok := <-updates:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("evicted party stream stayed open")
	}

	fresh, err := r.Get("first")
	require.NoError(t, err)
	assert.NotSame(t, first, fresh)
}

func TestRegistryRemove(t *testing.T) {
	t.Parallel()

	r := newRegistry(t, 4)
	_, err := r.Get("a")
	require.NoError(t, err)

	assert.True(t, r.Remove("a"))
	assert.False(t, r.Remove("a"))
	assert.Zero(t, r.Len())
}

func TestRegistryClose(t *testing.T) {
	t.Parallel()

	r := newRegistry(t, 4)
	_, err := r.Get("a")
	require.NoError(t, err)
	require.NoError(t, r.Ping(context.Background()))

	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	_, err = r.Get("a")
	assert.ErrorIs(t, err, party.ErrRegistryClosed)
	assert.ErrorIs(t, r.Ping(context.Background()), party.ErrRegistryClosed)
	assert.Zero(t, r.Len())
}

func TestNewRegistryBadCatalog(t *testing.T) {
	t.Parallel()

	_, err := party.NewRegistry(party.Config{Capacity: 1, MessagesFile: "/does/not/exist.yaml"}, nil)
	assert.ErrorIs(t, err, party.ErrLoadMessages)
}

func TestRegistryGetDuringClose(t *testing.T) {
	t.Parallel()

	for round := range 20 {
		r, err := party.NewRegistry(party.Config{MinParticipants: 2, FeedbackTTL: time.Second, Capacity: 64}, nil)
		require.NoError(t, err)

		var (
			mu      sync.Mutex
			got     []*party.Party
			wg      sync.WaitGroup
			started sync.WaitGroup
		)
		for g := range 8 {
			wg.Add(1)
			started.Add(1)
			go func() {
				defer wg.Done()
				started.Done()
				for i := 0; ; i++ {
					p, err := r.Get(fmt.Sprintf("r%d-g%d-%d", round, g, i%4))
					if err != nil {
						assert.ErrorIs(t, err, party.ErrRegistryClosed)
						return
					}
					mu.Lock()
					got = append(got, p)
					mu.Unlock()
				}
			}()
		}
		started.Wait()
		require.NoError(t, r.Close())
		wg.Wait()

		assert.Zero(t, r.Len(), "round %d left live parties", round)
		for _, p := range got {
			_, ok := <-p.Subscribe(context.Background())
			assert.False(t, ok, "round %d returned a party that was never closed", round)
		}
	}
}

func TestRegistryPartiesDraw(t *testing.T) {
	t.Parallel()

	t.Run("seeded drawer picks a listed friend", func(t *testing.T) {
		t.Parallel()

		r := newRegistry(t, 4)
		p, err := r.Get("a")
		require.NoError(t, err)
		for _, n := range []string{"ana", "bruno", "carla"} {
			_, err := p.AddFriend(context.Background(), n)
			require.NoError(t, err)
		}

		for range 10 {
			out, err := p.Draw(context.Background())
			require.NoError(t, err)
			assert.Contains(t, []string{"Ana", "Bruno", "Carla"}, out.Name)
		}
	})

	t.Run("registry options replace the seeded drawer", func(t *testing.T) {
		t.Parallel()

		d := new(mockDrawer)
		d.On("Index", 2).Return(1, nil).Once()
		r, err := party.NewRegistry(party.Config{MinParticipants: 2, FeedbackTTL: time.Second, Capacity: 4}, nil, party.WithDrawer(d))
		require.NoError(t, err)
		t.Cleanup(func() { _ = r.Close() })

		p, err := r.Get("a")
		require.NoError(t, err)
		_, _ = p.AddFriend(context.Background(), "ana")
		_, _ = p.AddFriend(context.Background(), "bruno")

		out, err := p.Draw(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bruno", out.Name)
		d.AssertExpectations(t)
	})
}
