package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inquest/threatkb-go/internal/api"
	"github.com/inquest/threatkb-go/internal/client"
)

var attachCmd = &cobra.Command{
	Use:   "attach <artifact> <artifact_id> <file>",
	Short: "Attach a file to an artifact",
	Long: `Upload a file against an existing artifact.

artifact:    yara_rule, c2dns, c2ip or task
artifact_id: artifact id as an integer
file:        the file to attach to the entity`,
	Args: cobra.ExactArgs(3),
	RunE: runAttach,
}

func init() {
	rootCmd.AddCommand(attachCmd)
}

func runAttach(cmd *cobra.Command, args []string) error {
	artifact, artifactID, path := args[0], args[1], args[2]
	if _, err := api.ParseEntityType(artifact); err != nil {
		return err
	}

	c, err := newSession()
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening attachment: %w", err)
	}
	defer f.Close()

	out, err := c.Create("file_upload", nil, &client.FileUpload{
		Field:   "file",
		Name:    filepath.Base(path),
		Content: f,
		Extra: map[string]string{
			"entity_type": artifact,
			"entity_id":   artifactID,
		},
	})
	if err != nil {
		return err
	}

	printOutput(cmd, c, out)
	return nil
}
