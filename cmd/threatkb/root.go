package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inquest/threatkb-go/internal/logging"
)

var logger *zap.Logger

var rootFlags struct {
	filterKeys string
}

var rootCmd = &cobra.Command{
	Use:   "threatkb",
	Short: "CLI for interacting with the ThreatKB API",
	Long: `threatkb is a command-line client for the ThreatKB threat-intelligence API.

Run 'threatkb configure' once to store your API token, secret key and host,
then use the other commands to attach files, comment on artifacts, pull
release data and search the database.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(logging.FromEnv())
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logging.Sync(logger)
		}
	},
	// Bare invocations and unrecognized actions print usage and fail.
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		if len(args) > 0 {
			return fmt.Errorf("unknown command %q", args[0])
		}
		return fmt.Errorf("no command specified")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.filterKeys, "filter-on-keys", "",
		"restrict printed results to a comma-separated list of object keys")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func filterKeys() []string {
	if rootFlags.filterKeys == "" {
		return nil
	}
	parts := strings.Split(rootFlags.filterKeys, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if k := strings.TrimSpace(p); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
