package main

import (
	"os"

	"inqboard/internal/interfaces/cli/worker"
)

// Standalone worker binary for deployments that schedule the triage
// pipeline separately from the API server.
func main() {
	if err := worker.NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
