package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tableaxis/pkg/api"
	apperr "github.com/matzehuels/tableaxis/pkg/errors"
	"github.com/matzehuels/tableaxis/pkg/pipeline"
)

// inspectCommand creates the inspect command, which previews the logical
// grid of the selected table and reports whether it can be switched.
func (c *CLI) inspectCommand() *cobra.Command {
	var sel selectFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the grid of the selected table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(nil, c.Logger)
			ex, err := runner.Inspect(cmd.Context(), doc, pipeline.Options{Select: sel.refs})
			if ex == nil {
				return err
			}

			desc := api.Describe(ex)
			desc.Switchable = err == nil
			if err != nil {
				desc.Problem = apperr.UserMessage(err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(desc)
			}

			fmt.Fprintln(out, StyleTitle.Render(ex.Container.Name)+" "+
				StyleDim.Render(fmt.Sprintf("(%s, %d×%d)", desc.Axis, desc.Rows, desc.Cols)))
			fmt.Fprintln(out, renderGrid(desc))
			printKeyValue(out, "Overlays", joinNames(desc.Overlays))
			if desc.Switchable {
				printSuccess(out, "ready to switch to %s", ex.Axis().Opposite().Plural())
			} else {
				printWarning(out, "%s", desc.Problem)
			}
			return nil
		},
	}

	sel.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the grid as JSON")
	return cmd
}
