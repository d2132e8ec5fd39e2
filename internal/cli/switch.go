package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	docio "github.com/matzehuels/tableaxis/pkg/io"
	"github.com/matzehuels/tableaxis/pkg/pipeline"
)

// switchOpts holds the command-line flags for the switch command.
type switchOpts struct {
	selectFlags
	output     string // output path; empty rewrites the input file
	name       string // name of the rebuilt table
	dryRun     bool   // check only, write nothing
	noSnapshot bool   // skip the undo snapshot
}

// switchCommand creates the switch command.
//
// The document is read, its selected table is switched, and the result is
// written back to the input file unless --output names another file or "-".
// An in-place switch stores an undo snapshot first.
func (c *CLI) switchCommand() *cobra.Command {
	var opts switchOpts

	cmd := &cobra.Command{
		Use:   "switch [file]",
		Short: "Switch the selected table between rows and columns",
		Long: `Switch the selected table between rows and columns.

The selection stored in the document is used unless --select names the table
by id or name. Validation runs before anything changes: a failed switch leaves
the file untouched.`,
		Example: `  tableaxis switch pricing.json
  tableaxis switch pricing.yaml --select "Pricing Grid" --name Pricing
  tableaxis switch pricing.json --dry-run
  cat pricing.json | tableaxis switch - -o -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSwitch(cmd, args[0], opts)
		},
	}

	opts.selectFlags.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: overwrite input, - for stdout)")
	cmd.Flags().StringVar(&opts.name, "name", "", "name of the rebuilt table (default from config, else \"Table\")")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "validate the switch without writing anything")
	cmd.Flags().BoolVar(&opts.noSnapshot, "no-snapshot", false, "do not store an undo snapshot")

	return cmd
}

func (c *CLI) runSwitch(cmd *cobra.Command, input string, opts switchOpts) error {
	output := opts.output
	if output == "" {
		output = input
	}
	inPlace := input != stdio && samePath(input, output)
	out := statusWriter(cmd, output)
	prog := newProgress(c.Logger)

	doc, err := c.readDocument(cmd, input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noSnapshot || opts.dryRun || !inPlace)
	if err != nil {
		return err
	}
	defer runner.Close()

	name := opts.name
	if name == "" {
		name = c.Config.Table.Name
	}
	popts := pipeline.Options{
		Select: opts.refs,
		Name:   name,
		DryRun: opts.dryRun,
	}
	if inPlace {
		popts.SnapshotPath = input
		popts.SnapshotFormat, _ = docio.FormatFromPath(input)
	}

	res, err := runner.Switch(cmd.Context(), doc, popts)
	if err != nil {
		return err
	}

	if opts.dryRun {
		printInfo(out, "%s", res.Status)
		printStats(out, res.Stats.Rows, res.Stats.Cols, res.Stats.Overlays, false)
		return nil
	}

	if err := c.writeDocument(cmd, doc, output); err != nil {
		return err
	}

	printSuccess(out, "%s", res.Status)
	printStats(out, res.Stats.Rows, res.Stats.Cols, res.Stats.Overlays, res.Snapshot)
	if output != stdio {
		printFile(out, output)
		prog.done(fmt.Sprintf("Wrote %s", output))
	}
	if res.Snapshot {
		printNextStep(out, "Revert with", fmt.Sprintf("%s undo %s", appName, input))
	}
	return nil
}
