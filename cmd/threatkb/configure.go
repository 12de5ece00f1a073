package main

import (
	"github.com/spf13/cobra"

	"github.com/inquest/threatkb-go/internal/config"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Store API credentials",
	Long: `Interactively prompt for the API token, secret key and host and write
them to ~/.threatkb/credentials. Previously stored values are shown masked
as defaults; press enter to keep them.`,
	Args: cobra.NoArgs,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	path, err := config.DefaultPath()
	if err != nil {
		return err
	}
	return config.Configure(config.NewPrompter(), path)
}
