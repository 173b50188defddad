package main

import (
	"os"

	"github.com/adanyl0v/taskgate/internal/app"
)

func main() {
	app.InitDefaultLogger()

	if err := newRootCmd().Execute(); err != nil {
		logger := app.Logger()
		logger.Error().
			Err(err).
			Msg("command failed")
		os.Exit(1)
	}
}
