package main

import (
	"os"

	"github.com/spf13/cobra"

	"inqboard/internal/interfaces/cli/migrate"
	"inqboard/internal/interfaces/cli/server"
	"inqboard/internal/interfaces/cli/worker"
	"inqboard/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "inqboard",
		Short:   "Inqboard - support inquiry board with automated triage",
		Long:    `Inqboard serves the support inquiry board API and runs the triage pipeline that prepares inquiries for admin approval.`,
		Version: version.Version,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		worker.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
