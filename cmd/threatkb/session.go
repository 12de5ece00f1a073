package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inquest/threatkb-go/internal/client"
	"github.com/inquest/threatkb-go/internal/config"
)

// newSession loads the stored credentials and builds the API client every
// command except configure runs against.
func newSession() (*client.Client, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	creds, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return client.New(client.Options{
		Host:       creds.APIHost,
		Token:      creds.Token,
		SecretKey:  creds.SecretKey,
		UseHTTPS:   creds.UseHTTPS(),
		FilterKeys: filterKeys(),
		Logger:     logger,
	}), nil
}

// printOutput writes an API response, routed through the session's result
// filter, to the command's stdout. A nil body is the create path's 412
// no-op; it prints as None so it stays distinguishable from an empty
// response.
func printOutput(cmd *cobra.Command, c *client.Client, out []byte) {
	if out == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "None")
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(c.FilterOutput(out)))
}
