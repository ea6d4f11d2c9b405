package token

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	j := New("test-secret", time.Hour)

	tok, err := j.Generate("green_hero")
	require.NoError(t, err)

	username, err := j.Username(tok)
	require.NoError(t, err)
	assert.Equal(t, "green_hero", username)
}

func TestWrongSecretRejected(t *testing.T) {
	tok, err := New("secret-a", time.Hour).Generate("green_hero")
	require.NoError(t, err)

	_, err = New("secret-b", time.Hour).Username(tok)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	tok, err := New("test-secret", -time.Minute).Generate("green_hero")
	require.NoError(t, err)

	_, err = New("test-secret", -time.Minute).Username(tok)
	assert.Error(t, err)
}

func TestFromRequest(t *testing.T) {
	j := New("test-secret", time.Hour)

	r, _ := http.NewRequest(http.MethodGet, "/", nil)
	_, err := j.FromRequest(r)
	assert.Error(t, err, "missing header")

	r.Header.Set("Authorization", "Basic abc")
	_, err = j.FromRequest(r)
	assert.Error(t, err, "wrong scheme")

	r.Header.Set("Authorization", "Bearer some-token")
	tok, err := j.FromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "some-token", tok)
}
