package main

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <filter> <filter_text>",
	Short: "Search the database",
	Long: `Run a search query against the ThreatKB database.

filter:      all, tag, state or category
filter_text: text to filter on`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	filter, text := args[0], args[1]
	switch filter {
	case "all", "tag", "state", "category":
	default:
		return fmt.Errorf("unknown filter %q (want all, tag, state or category)", filter)
	}

	c, err := newSession()
	if err != nil {
		return err
	}

	out, err := c.Get("search", "", url.Values{filter: {text}})
	if err != nil {
		return err
	}

	printOutput(cmd, c, out)
	return nil
}
