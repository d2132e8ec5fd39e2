package cli

import (
	"github.com/spf13/cobra"

	docio "github.com/matzehuels/tableaxis/pkg/io"
)

// undoCommand creates the undo command. It restores a document file from
// the snapshot its last in-place switch stored. Each snapshot can be used
// once.
func (c *CLI) undoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "undo [file]",
		Short: "Restore a document from before its last switch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			format, err := docio.FormatFromPath(path)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(false)
			if err != nil {
				return err
			}
			defer runner.Close()

			doc, err := runner.Undo(cmd.Context(), path, format)
			if err != nil {
				return err
			}
			if err := docio.Export(doc, path); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Restored %s", path)
			printDetail(cmd.OutOrStdout(), "%d nodes", doc.NodeCount())
			return nil
		},
	}
}
