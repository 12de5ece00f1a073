package main

import (
	"net/url"

	"github.com/spf13/cobra"
)

var releaseCmd = &cobra.Command{
	Use:   "release [release_id]",
	Short: "Pull release data",
	Long:  `Fetch one release by id, or all releases when no id is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRelease,
}

func init() {
	rootCmd.AddCommand(releaseCmd)
}

func runRelease(cmd *cobra.Command, args []string) error {
	var releaseID string
	if len(args) > 0 {
		releaseID = args[0]
	}

	c, err := newSession()
	if err != nil {
		return err
	}

	out, err := c.Get("releases", releaseID, url.Values{"short": {"0"}})
	if err != nil {
		return err
	}

	printOutput(cmd, c, out)
	return nil
}
