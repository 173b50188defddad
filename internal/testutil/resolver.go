package testutil

import (
	"sync"

	"github.com/adanyl0v/taskgate/internal/credential"
)

// StaticResolver is a credential.Resolver returning a fixed token or error.
// It also records Invalidate calls.
type StaticResolver struct {
	Token string
	Err   error

	mu          sync.Mutex
	resolves    int
	invalidates int
}

func NewStaticResolver(token string) *StaticResolver {
	return &StaticResolver{Token: token}
}

// NewMissingResolver fails every Resolve with credential.ErrNoCredential.
func NewMissingResolver() *StaticResolver {
	return &StaticResolver{Err: credential.ErrNoCredential}
}

func (r *StaticResolver) Resolve() (credential.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolves++
	if r.Err != nil {
		return credential.Credential{}, r.Err
	}
	return credential.Credential{Token: r.Token, Source: credential.SourceEnv}, nil
}

func (r *StaticResolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidates++
}

func (r *StaticResolver) Resolves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolves
}

func (r *StaticResolver) Invalidates() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.invalidates
}
