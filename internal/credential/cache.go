package credential

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Invalidator is implemented by resolvers that hold a cached credential.
type Invalidator interface {
	Invalidate()
}

// CachingResolver keeps a resolved credential for at most ttl, and never past
// the exp claim when the token is a JWT. Failures are not cached.
type CachingResolver struct {
	next Resolver
	ttl  time.Duration
	now  func() time.Time

	mu        sync.Mutex
	cached    *Credential
	expiresAt time.Time
}

func NewCachingResolver(next Resolver, ttl time.Duration) *CachingResolver {
	return &CachingResolver{
		next: next,
		ttl:  ttl,
		now:  time.Now,
	}
}

func (c *CachingResolver) Resolve() (Credential, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.cached != nil && now.Before(c.expiresAt) {
		return *c.cached, nil
	}
	c.cached = nil

	cred, err := c.next.Resolve()
	if err != nil {
		return Credential{}, err
	}

	expiresAt := now.Add(c.ttl)
	if exp, ok := tokenExpiry(cred.Token); ok && exp.Before(expiresAt) {
		expiresAt = exp
	}
	if now.Before(expiresAt) {
		c.cached = &cred
		c.expiresAt = expiresAt
	}
	return cred, nil
}

func (c *CachingResolver) Invalidate() {
	c.mu.Lock()
	c.cached = nil
	c.mu.Unlock()
}

// tokenExpiry reads the exp claim without verifying the signature; the
// remote service is the one that verifies.
func tokenExpiry(token string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
