package main

import (
	"os"

	"github.com/spf13/cobra"

	"modgate/internal/interfaces/cli/migrate"
	"modgate/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "modgate",
		Short: "Modgate - license key and session entitlement server",
		Long:  `Modgate issues offline-verifiable session credentials against single-use license keys, with administrative tooling for key minting and file registry management.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
