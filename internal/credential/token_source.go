package credential

import "golang.org/x/oauth2"

type tokenSource struct {
	resolver Resolver
}

// TokenSource adapts r to oauth2.TokenSource so oauth2.Transport can inject
// the bearer header. Every Token call resolves again; caching, if any, is
// the resolver's business.
func TokenSource(r Resolver) oauth2.TokenSource {
	return tokenSource{resolver: r}
}

func (s tokenSource) Token() (*oauth2.Token, error) {
	cred, err := s.resolver.Resolve()
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{
		AccessToken: cred.Token,
		TokenType:   "Bearer",
	}, nil
}
