package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/mdouchement/checklist/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var signingKey = []byte("secret")

func setup(t *testing.T) (session.Manager, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	store, err := session.NewRedisStore("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
	})

	return session.NewManager(store, signingKey), mr
}

func TestManagerIssue(t *testing.T) {
	m, mr := setup(t)
	ctx := context.Background()

	token, err := m.Issue(ctx, 42, "00000000-0000-0000-0000-000000000042")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// One new store entry, TTL matching the token lifetime.
	key := session.KeyPrefix + token
	assert.True(t, mr.Exists(key))
	assert.Equal(t, session.TokenLifetime, mr.TTL(key))

	payload, err := mr.Get(key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":42,"uuid":"00000000-0000-0000-0000-000000000042"}`, payload)

	// The token itself is a signed JWT carrying the defense-in-depth claims.
	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return signingKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.EqualValues(t, 42, claims["userId"])
	assert.Regexp(t, `^[a-fA-F0-9]{8}-[a-fA-F0-9]{4}-4[a-fA-F0-9]{3}-[8|9|aA|bB][a-fA-F0-9]{3}-[a-fA-F0-9]{12}$`, claims["jti"])
	assert.EqualValues(t, session.TokenLifetime.Seconds(), claims["exp"].(float64)-claims["iat"].(float64))
}

func TestManagerResolve(t *testing.T) {
	m, _ := setup(t)
	ctx := context.Background()

	token, err := m.Issue(ctx, 7, "uuid-7")
	require.NoError(t, err)

	record, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 7, record.UserID)
	assert.Equal(t, "uuid-7", record.UserUUID)

	// Unknown tokens resolve to nothing, without error.
	record, err = m.Resolve(ctx, "never-issued")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestManagerResolveExpired(t *testing.T) {
	m, mr := setup(t)
	ctx := context.Background()

	token, err := m.Issue(ctx, 7, "uuid-7")
	require.NoError(t, err)

	mr.FastForward(session.TokenLifetime + time.Second)

	// An expired token is indistinguishable from one that never existed.
	record, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestManagerRevoke(t *testing.T) {
	m, _ := setup(t)
	ctx := context.Background()

	token, err := m.Issue(ctx, 7, "uuid-7")
	require.NoError(t, err)

	require.NoError(t, m.Revoke(ctx, token))

	record, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, record)

	// Revoking twice is a failure, not a silent success.
	assert.Equal(t, session.ErrNotFound, m.Revoke(ctx, token))
}

func TestManagerConcurrentTokensPerUser(t *testing.T) {
	m, mr := setup(t)
	ctx := context.Background()

	first, err := m.Issue(ctx, 7, "uuid-7")
	require.NoError(t, err)
	second, err := m.Issue(ctx, 7, "uuid-7")
	require.NoError(t, err)

	// Two logins within the same second still yield distinct tokens,
	// each with its own store entry.
	assert.NotEqual(t, first, second)
	assert.Len(t, mr.Keys(), 2)

	// Issuing again does not invalidate the previous token.
	record, err := m.Resolve(ctx, first)
	require.NoError(t, err)
	assert.NotNil(t, record)

	require.NoError(t, m.Revoke(ctx, second))

	// Revoking one token leaves the others valid.
	record, err = m.Resolve(ctx, first)
	require.NoError(t, err)
	assert.NotNil(t, record)
}
