package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adanyl0v/taskgate/internal/app"
)

func newCredentialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "credential",
		Short: "Show which source the bearer token resolves from.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cred, err := app.CredentialResolver().Resolve()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "source: %s\ntoken:  %s\n", cred.Source, maskToken(cred.Token))
			return nil
		},
	}
}

// maskToken keeps the first and last four characters of long tokens.
func maskToken(token string) string {
	if len(token) <= 12 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
