package app

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/adanyl0v/taskgate/internal/config"
)

// MustReadConfig reads the environment, or the file at path first when
// path is set.
func MustReadConfig(path string) {
	var reader config.Reader = config.NewEnvReader()
	if path != "" {
		reader = config.NewFileReader(path)
	}

	cfg, err := reader.Read()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to read config")
		panic(err)
	}
	globalLogger.Info().
		Str("env", cfg.Env).
		Str("remote_host", cfg.Remote.Host).
		Msg("read config")

	config.SetGlobal(cfg)
}

// OverridePort replaces the configured listen port when port is set.
func OverridePort(port string) {
	if port == "" {
		return
	}
	config.Global().HTTP.Port = port
	globalLogger.Debug().
		Str("port", port).
		Msg("overrode http port")
}
