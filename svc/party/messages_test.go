package party_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/secretfriend/svc/party"
)

func TestParseMessages(t *testing.T) {
	t.Parallel()

	msgs, err := party.ParseMessages([]byte("duplicate: \"Este nome já foi adicionado à lista.\"\nresult: \"Sorteado: {name}\"\n"))
	require.NoError(t, err)

	def := party.DefaultMessages()
	assert.Equal(t, "Este nome já foi adicionado à lista.", msgs.Duplicate)
	assert.Equal(t, "Sorteado: {name}", msgs.Result)
	assert.Equal(t, def.EmptyField, msgs.EmptyField)
	assert.Equal(t, def.EmptyRoster, msgs.EmptyRoster)
}

func TestParseMessagesInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := party.ParseMessages([]byte("duplicate: [unterminated"))
	assert.ErrorIs(t, err, party.ErrLoadMessages)
}

func TestLoadMessages(t *testing.T) {
	t.Parallel()

	t.Run("empty path gives defaults", func(t *testing.T) {
		t.Parallel()

		msgs, err := party.LoadMessages("")
		require.NoError(t, err)
		assert.Equal(t, party.DefaultMessages(), msgs)
	})

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "messages.yaml")
		require.NoError(t, os.WriteFile(path, []byte("empty_field: Digite um nome.\n"), 0o600))

		msgs, err := party.LoadMessages(path)
		require.NoError(t, err)
		assert.Equal(t, "Digite um nome.", msgs.EmptyField)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := party.LoadMessages(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, party.ErrLoadMessages)
	})
}

func TestCatalogAppliesToParty(t *testing.T) {
	t.Parallel()

	msgs, err := party.ParseMessages([]byte("not_enough: \"Adicione pelo menos {min} amigos para sortear.\"\n"))
	require.NoError(t, err)

	p := party.New("pt", party.WithMessages(msgs))
	defer p.Close()
	_, _ = p.AddFriend(t.Context(), "ana")

	out, err := p.Draw(t.Context())
	require.Error(t, err)
	assert.Equal(t, "Adicione pelo menos 2 amigos para sortear.", out.Feedback.Text)
}
