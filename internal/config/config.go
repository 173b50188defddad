package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env        string `env:"ENV" env-default:"local"`
	HTTP       HTTPConfig
	Remote     RemoteConfig
	Credential CredentialConfig
	Static     StaticConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"127.0.0.1"`
	Port            string        `env:"PORT" env-default:"3000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type RemoteConfig struct {
	Host    string        `env:"REMOTE_HOST" env-default:"api.taskhub.dev"`
	Timeout time.Duration `env:"REMOTE_TIMEOUT" env-default:"30s"`
}

type CredentialConfig struct {
	// SecretsFile overrides the default secrets location when set.
	SecretsFile string        `env:"TASKGATE_SECRETS_FILE"`
	CacheTTL    time.Duration `env:"CREDENTIAL_CACHE_TTL" env-default:"0s"`
}

type StaticConfig struct {
	Root string `env:"STATIC_ROOT" env-default:"public"`
}
