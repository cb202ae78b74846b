package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	j := &JWTer{Secret: []byte("testsecret"), TTL: time.Hour}

	token, err := j.Issue("alice")
	require.NoError(t, err)

	claims, err := j.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseExpired(t *testing.T) {
	j := &JWTer{Secret: []byte("testsecret"), TTL: -time.Minute}

	token, err := j.Issue("alice")
	require.NoError(t, err)

	_, err = j.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseWrongSecret(t *testing.T) {
	issuer := &JWTer{Secret: []byte("one"), TTL: time.Hour}
	verifier := &JWTer{Secret: []byte("two"), TTL: time.Hour}

	token, err := issuer.Issue("alice")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseGarbage(t *testing.T) {
	j := &JWTer{Secret: []byte("testsecret"), TTL: time.Hour}

	_, err := j.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = j.Parse("")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)
	assert.True(t, CheckPassword("hunter2", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestHashPasswordOverlong(t *testing.T) {
	// bcrypt rejects inputs over 72 bytes; the error must surface
	// instead of producing an empty hash.
	hash, err := HashPassword(strings.Repeat("a", 80))
	assert.Error(t, err)
	assert.Empty(t, hash)
}
