package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lumira-inc/lumira/internal/interfaces/cli/migrate"
	"github.com/lumira-inc/lumira/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lumira",
		Short: "Lumira - AI product photography studio",
		Long:  `Lumira turns a single product photo into a styled set of studio shots, metered by credits.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
