package main

import (
	"github.com/spf13/cobra"

	"github.com/adanyl0v/taskgate/internal/app"
)

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "taskgate",
		Short: "Local REST gateway for tasks stored on the remote task service.",
		Long: `taskgate serves /api/tasks as plain REST and forwards every request to the
remote task service's RPC endpoint, authenticating with the bearer token
found in the secrets file or TASKGATE_API_TOKEN. Other paths serve the
static front-end.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.MustReadConfig(configPath)
			app.MustInitApplicationLogger()
			app.InitCredentialResolver()
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "read settings from a .env, .yaml or .json file before the environment")

	serveCmd := newServeCmd()
	rootCmd.RunE = serveCmd.RunE
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	rootCmd.AddCommand(
		serveCmd,
		newCredentialCmd(),
	)
	return rootCmd
}

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the gateway (default command).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := cmd.Flags().GetString("port")
			if err != nil {
				return err
			}
			app.OverridePort(port)
			app.InitRemoteClient()
			app.MustListenAndServeHTTP()
			return nil
		},
	}
	serveCmd.Flags().String("port", "", "listen port, overrides PORT")
	return serveCmd
}
