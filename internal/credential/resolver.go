// Package credential resolves the bearer token used to authenticate to the
// remote task service.
package credential

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	// AppDir is the directory name under the user's config home.
	AppDir = "taskgate"

	// SecretsFile is the secrets document filename.
	SecretsFile = "secrets.json"

	// ServiceKey is looked up first in the secrets document.
	ServiceKey = "taskhub.token"

	// GenericKey is the fallback key in the secrets document.
	GenericKey = "token"

	// EnvVar overrides the secrets document when it yields nothing.
	EnvVar = "TASKGATE_API_TOKEN"

	SourceEnv = "env"
)

var ErrNoCredential = errors.New("no credential found")

type Credential struct {
	Token string
	// Source is "secrets:<key>" or "env".
	Source string
}

type Resolver interface {
	// Resolve returns the current credential or an error wrapping
	// ErrNoCredential when no source yields one.
	Resolve() (Credential, error)
}

// DefaultSecretsPath returns $XDG_CONFIG_HOME/taskgate/secrets.json,
// or $HOME/.config/taskgate/secrets.json when XDG_CONFIG_HOME is unset.
func DefaultSecretsPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppDir, SecretsFile)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(AppDir, SecretsFile)
	}
	return filepath.Join(home, ".config", AppDir, SecretsFile)
}

type fileEnvResolver struct {
	logger zerolog.Logger
	path   string
}

// NewResolver returns a Resolver that reads the secrets document at path on
// every call and falls back to EnvVar. An empty path means DefaultSecretsPath.
func NewResolver(logger zerolog.Logger, path string) Resolver {
	if path == "" {
		path = DefaultSecretsPath()
	}
	return &fileEnvResolver{
		logger: logger,
		path:   path,
	}
}

func (r *fileEnvResolver) Resolve() (Credential, error) {
	secrets, err := readSecrets(r.path)
	if err != nil {
		r.logger.Debug().
			Err(err).
			Str("path", r.path).
			Msg("secrets file unavailable, trying env")
	} else {
		for _, key := range []string{ServiceKey, GenericKey} {
			if token, ok := secrets[key].(string); ok && token != "" {
				r.logger.Trace().
					Str("source", "secrets:"+key).
					Msg("resolved credential")
				return Credential{Token: token, Source: "secrets:" + key}, nil
			}
		}
	}

	if token := os.Getenv(EnvVar); token != "" {
		r.logger.Trace().
			Str("source", SourceEnv).
			Msg("resolved credential")
		return Credential{Token: token, Source: SourceEnv}, nil
	}

	return Credential{}, fmt.Errorf("%w: add %q to %s or set %s",
		ErrNoCredential, ServiceKey, r.path, EnvVar)
}

// readSecrets parses the secrets document. JSON is tried first so that
// tab-indented files work; anything else is read as YAML.
func readSecrets(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	secrets := make(map[string]any)
	if json.Valid(data) {
		err = json.Unmarshal(data, &secrets)
	} else {
		err = yaml.Unmarshal(data, &secrets)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return secrets, nil
}
