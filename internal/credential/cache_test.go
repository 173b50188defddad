package credential

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingResolver struct {
	calls int
	token string
	err   error
}

func (r *countingResolver) Resolve() (Credential, error) {
	r.calls++
	if r.err != nil {
		return Credential{}, r.err
	}
	return Credential{Token: r.token, Source: SourceEnv}, nil
}

func newTestCache(next Resolver, ttl time.Duration, now *time.Time) *CachingResolver {
	c := NewCachingResolver(next, ttl)
	c.now = func() time.Time { return *now }
	return c
}

func TestCachingResolver_CachesWithinTTL(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	next := &countingResolver{token: "opaque"}
	c := newTestCache(next, time.Minute, &now)

	for i := 0; i < 3; i++ {
		cred, err := c.Resolve()
		require.NoError(t, err)
		assert.Equal(t, "opaque", cred.Token)
	}
	assert.Equal(t, 1, next.calls)

	now = now.Add(time.Minute)
	_, err := c.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestCachingResolver_NeverCachesFailure(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	next := &countingResolver{err: ErrNoCredential}
	c := newTestCache(next, time.Hour, &now)

	_, err := c.Resolve()
	assert.ErrorIs(t, err, ErrNoCredential)

	next.err = nil
	next.token = "late"
	cred, err := c.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "late", cred.Token)
	assert.Equal(t, 2, next.calls)
}

func TestCachingResolver_Invalidate(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	next := &countingResolver{token: "opaque"}
	c := newTestCache(next, time.Hour, &now)

	_, err := c.Resolve()
	require.NoError(t, err)
	c.Invalidate()
	_, err = c.Resolve()
	require.NoError(t, err)

	assert.Equal(t, 2, next.calls)
}

func TestCachingResolver_JWTExpiryBoundsTTL(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(10 * time.Second)),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	next := &countingResolver{token: token}
	c := newTestCache(next, time.Hour, &now)

	_, err = c.Resolve()
	require.NoError(t, err)
	now = now.Add(5 * time.Second)
	_, err = c.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, next.calls)

	now = now.Add(5 * time.Second)
	_, err = c.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestCachingResolver_ExpiredJWTNotCached(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	next := &countingResolver{token: token}
	c := newTestCache(next, time.Hour, &now)

	for i := 0; i < 2; i++ {
		_, err = c.Resolve()
		require.NoError(t, err)
	}
	assert.Equal(t, 2, next.calls)
}

func TestTokenExpiry_OpaqueToken(t *testing.T) {
	_, ok := tokenExpiry("not-a-jwt")
	assert.False(t, ok)
}

