package party_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/secretfriend/pkg/draw"
	"github.com/dmitrymomot/secretfriend/pkg/feedback"
	"github.com/dmitrymomot/secretfriend/pkg/roster"
	"github.com/dmitrymomot/secretfriend/svc/party"
)

type mockDrawer struct {
	mock.Mock
}

func (m *mockDrawer) Index(n int) (int, error) {
	args := m.Called(n)
	return args.Int(0), args.Error(1)
}

func newParty(t *testing.T, opts ...party.Option) *party.Party {
	t.Helper()
	p := party.New("p1", opts...)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestAddFriend(t *testing.T) {
	t.Parallel()

	t.Run("stores title-cased name", func(t *testing.T) {
		t.Parallel()

		p := newParty(t)
		out, err := p.AddFriend(context.Background(), "  joão silva ")
		require.NoError(t, err)

		assert.Equal(t, "João Silva", out.Name)
		assert.Equal(t, party.InputClearAndFocus, out.Input)
		assert.Equal(t, []string{"João Silva"}, out.Names)
		assert.True(t, out.Feedback.IsZero())
	})

	t.Run("keeps repeated inner spaces", func(t *testing.T) {
		t.Parallel()

		p := newParty(t)
		out, err := p.AddFriend(context.Background(), "  joão   silva ")
		require.NoError(t, err)

		assert.Equal(t, "João   Silva", out.Name)
		assert.Equal(t, []string{"João   Silva"}, out.Names)
	})

	t.Run("blank input keeps roster and refocuses", func(t *testing.T) {
		t.Parallel()

		p := newParty(t)
		for _, input := range []string{"", "   ", "\t\n", " \ufeff "} {
			out, err := p.AddFriend(context.Background(), input)
			assert.ErrorIs(t, err, roster.ErrBlankInput)
			assert.Equal(t, party.InputRefocus, out.Input)
			assert.Empty(t, out.Names)
			assert.Equal(t, feedback.Error(party.DefaultMessages().EmptyField), out.Feedback)
		}
	})

	t.Run("case and spacing variants are duplicates", func(t *testing.T) {
		t.Parallel()

		p := newParty(t)
		_, err := p.AddFriend(context.Background(), "Ana")
		require.NoError(t, err)

		for _, input := range []string{"ana", " ANA ", "aNa"} {
			out, err := p.AddFriend(context.Background(), input)
			assert.ErrorIs(t, err, roster.ErrDuplicateName)
			assert.Equal(t, party.InputClearAndFocus, out.Input)
			assert.Equal(t, []string{"Ana"}, out.Names)
			assert.Equal(t, feedback.KindError, out.Feedback.Kind)
		}
	})
}

func TestDraw(t *testing.T) {
	t.Parallel()

	t.Run("empty roster", func(t *testing.T) {
		t.Parallel()

		d := new(mockDrawer)
		p := newParty(t, party.WithDrawer(d))

		out, err := p.Draw(context.Background())
		assert.ErrorIs(t, err, roster.ErrEmptyRoster)
		assert.Equal(t, "The list is empty. Add at least 2 friends.", out.Feedback.Text)
		d.AssertNotCalled(t, "Index", mock.Anything)
	})

	t.Run("single friend is not enough", func(t *testing.T) {
		t.Parallel()

		d := new(mockDrawer)
		p := newParty(t, party.WithDrawer(d))
		_, err := p.AddFriend(context.Background(), "ana")
		require.NoError(t, err)

		out, err := p.Draw(context.Background())
		assert.ErrorIs(t, err, roster.ErrInsufficientRoster)
		assert.Equal(t, "Add at least 2 friends to draw.", out.Feedback.Text)
		d.AssertNotCalled(t, "Index", mock.Anything)
	})

	t.Run("names the drawn friend and keeps the roster", func(t *testing.T) {
		t.Parallel()

		d := new(mockDrawer)
		d.On("Index", 3).Return(1, nil).Twice()
		p := newParty(t, party.WithDrawer(d))
		for _, n := range []string{"ana", "bruno", "carla"} {
			_, err := p.AddFriend(context.Background(), n)
			require.NoError(t, err)
		}

		for range 2 {
			out, err := p.Draw(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "Bruno", out.Name)
			assert.Equal(t, feedback.Success("🎉 Your secret friend is: Bruno!"), out.Feedback)
			assert.Equal(t, []string{"Ana", "Bruno", "Carla"}, out.Names)
		}
		d.AssertExpectations(t)
	})

	t.Run("drawer failure", func(t *testing.T) {
		t.Parallel()

		d := new(mockDrawer)
		d.On("Index", 2).Return(0, errors.New("entropy gone")).Once()
		p := newParty(t, party.WithDrawer(d))
		_, _ = p.AddFriend(context.Background(), "ana")
		_, _ = p.AddFriend(context.Background(), "bruno")

		_, err := p.Draw(context.Background())
		assert.ErrorIs(t, err, party.ErrDraw)
	})

	t.Run("out of range index is rejected", func(t *testing.T) {
		t.Parallel()

		d := new(mockDrawer)
		d.On("Index", 2).Return(5, nil).Once()
		p := newParty(t, party.WithDrawer(d))
		_, _ = p.AddFriend(context.Background(), "ana")
		_, _ = p.AddFriend(context.Background(), "bruno")

		_, err := p.Draw(context.Background())
		assert.ErrorIs(t, err, party.ErrDraw)
	})

	t.Run("custom minimum", func(t *testing.T) {
		t.Parallel()

		p := newParty(t, party.WithMinParticipants(3), party.WithDrawer(draw.New(draw.WithSeed(7))))
		_, _ = p.AddFriend(context.Background(), "ana")
		_, _ = p.AddFriend(context.Background(), "bruno")

		out, err := p.Draw(context.Background())
		assert.ErrorIs(t, err, roster.ErrInsufficientRoster)
		assert.Equal(t, "Add at least 3 friends to draw.", out.Feedback.Text)
		assert.Equal(t, 3, p.MinParticipants())
	})
}

func TestReset(t *testing.T) {
	t.Parallel()

	p := newParty(t)
	_, _ = p.AddFriend(context.Background(), "ana")
	_, _ = p.AddFriend(context.Background(), "bruno")
	_, err := p.Draw(context.Background())
	require.NoError(t, err)
	require.False(t, p.Feedback().IsZero())

	out := p.Reset(context.Background())
	assert.Empty(t, out.Names)
	assert.True(t, out.Feedback.IsZero())
	assert.Equal(t, party.InputClearAndFocus, out.Input)

	_, err = p.Draw(context.Background())
	assert.ErrorIs(t, err, roster.ErrEmptyRoster)
}

func TestScenarioAnaBruno(t *testing.T) {
	t.Parallel()

	d := new(mockDrawer)
	d.On("Index", 2).Return(0, nil).Once()
	p := newParty(t, party.WithDrawer(d))
	ctx := context.Background()

	_, err := p.AddFriend(ctx, "Ana")
	require.NoError(t, err)
	_, err = p.AddFriend(ctx, "ana")
	require.ErrorIs(t, err, roster.ErrDuplicateName)
	_, err = p.AddFriend(ctx, "bruno")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Bruno"}, p.Names())

	out, err := p.Draw(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.Name)
	d.AssertExpectations(t)
}

func TestFeedbackExpiry(t *testing.T) {
	t.Parallel()

	p := newParty(t, party.WithFeedbackTTL(100*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	updates := p.Subscribe(ctx)

	_, err := p.AddFriend(ctx, " ")
	require.ErrorIs(t, err, roster.ErrBlankInput)

	select {
	case msg := <-updates:
		assert.Equal(t, feedback.KindError, msg.Kind)
	case <-time.After(time.Second):
		t.Fatal("no feedback update")
	}
	select {
	case msg := <-updates:
		assert.True(t, msg.IsZero())
	case <-time.After(time.Second):
		t.Fatal("error message was not cleared")
	}
	assert.True(t, p.Feedback().IsZero())
}

func TestSuccessPersists(t *testing.T) {
	t.Parallel()

	p := newParty(t, party.WithFeedbackTTL(20*time.Millisecond))
	_, _ = p.AddFriend(context.Background(), "ana")
	_, _ = p.AddFriend(context.Background(), "bruno")
	_, err := p.Draw(context.Background())
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, feedback.KindSuccess, p.Feedback().Kind)
}
