package main

import (
	"github.com/spf13/cobra"

	"github.com/inquest/threatkb-go/internal/api"
)

var commentCmd = &cobra.Command{
	Use:   "comment <artifact> <artifact_id> <comment>",
	Short: "Comment on an artifact",
	Long: `Post a comment against an existing artifact.

artifact:    yara_rule, c2dns, c2ip or task
artifact_id: artifact id as an integer
comment:     the comment to add to the artifact`,
	Args: cobra.ExactArgs(3),
	RunE: runComment,
}

func init() {
	rootCmd.AddCommand(commentCmd)
}

func runComment(cmd *cobra.Command, args []string) error {
	artifact, artifactID, text := args[0], args[1], args[2]
	entityType, err := api.ParseEntityType(artifact)
	if err != nil {
		return err
	}

	c, err := newSession()
	if err != nil {
		return err
	}

	out, err := c.Create("comments", map[string]any{
		"comment":     text,
		"entity_type": int(entityType),
		"entity_id":   artifactID,
	}, nil)
	if err != nil {
		return err
	}

	printOutput(cmd, c, out)
	return nil
}
