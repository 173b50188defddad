package app

import (
	"github.com/adanyl0v/taskgate/internal/config"
	"github.com/adanyl0v/taskgate/internal/credential"
	"github.com/adanyl0v/taskgate/internal/remote"
)

var (
	globalResolver     credential.Resolver
	globalRemoteClient *remote.Client
)

// InitCredentialResolver builds the resolver, wrapped in a cache when
// CREDENTIAL_CACHE_TTL is positive.
func InitCredentialResolver() {
	cfg := config.Global().Credential
	logger := globalLogger.With().Str("component", "credential").Logger()

	globalResolver = credential.NewResolver(logger, cfg.SecretsFile)
	if cfg.CacheTTL > 0 {
		globalResolver = credential.NewCachingResolver(globalResolver, cfg.CacheTTL)
	}

	path := cfg.SecretsFile
	if path == "" {
		path = credential.DefaultSecretsPath()
	}
	globalLogger.Info().
		Str("secrets_file", path).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("initialized credential resolver")
}

func InitRemoteClient() {
	cfg := config.Global().Remote
	logger := globalLogger.With().Str("component", "remote").Logger()

	globalRemoteClient = remote.New(
		logger,
		"https://"+cfg.Host,
		globalResolver,
		remote.WithTimeout(cfg.Timeout),
	)
	globalLogger.Info().
		Str("host", cfg.Host).
		Dur("timeout", cfg.Timeout).
		Msg("initialized remote client")
}

// CredentialResolver returns the resolver built by InitCredentialResolver.
func CredentialResolver() credential.Resolver {
	return globalResolver
}
