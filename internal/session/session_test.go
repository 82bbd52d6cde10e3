package session

import (
	"path/filepath"
	"testing"

	"github.com/msvens/pfolio/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")

	s, err := NewStore(path)
	require.NoError(t, err)
	_, ok := s.Token()
	assert.False(t, ok, "fresh store must be logged out")

	tok := Token{Token: "abc123", User: api.User{Id: "u1", Username: "admin"}}
	require.NoError(t, s.Set(tok))

	got, ok := s.Token()
	assert.True(t, ok)
	assert.Equal(t, "abc123", got)
	assert.Equal(t, "admin", s.User().Username)

	// a second store on the same path sees the persisted token
	s2, err := NewStore(path)
	require.NoError(t, err)
	got, ok = s2.Token()
	assert.True(t, ok)
	assert.Equal(t, "abc123", got)

	require.NoError(t, s2.Clear())
	_, ok = s2.Token()
	assert.False(t, ok)

	s3, err := NewStore(path)
	require.NoError(t, err)
	_, ok = s3.Token()
	assert.False(t, ok, "clear must remove the persisted token")
}

func TestStoreSubscribe(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "token.json"))
	require.NoError(t, err)

	var seen []string
	s.Subscribe(func(tok Token) {
		seen = append(seen, tok.Token)
	})

	require.NoError(t, s.Set(Token{Token: "first"}))
	require.NoError(t, s.Set(Token{Token: "second"}))
	require.NoError(t, s.Clear())

	assert.Equal(t, []string{"first", "second", ""}, seen)
}
