package cli

import (
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	docio "github.com/matzehuels/tableaxis/pkg/io"
	"github.com/matzehuels/tableaxis/pkg/scene"
)

// stdio is the path argument that stands for stdin or stdout.
const stdio = "-"

// selectFlags are the selection flags shared by commands that operate on a
// document's table.
type selectFlags struct {
	refs []string
}

func (f *selectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.refs, "select", "s", nil, "select node(s) by id or name instead of the document's selection")
}

// readDocument loads the document at path. "-" reads stdin in the
// configured output format.
func (c *CLI) readDocument(cmd *cobra.Command, path string) (*scene.Document, error) {
	if path != stdio {
		return docio.Import(path)
	}
	format, err := docio.ParseFormat(c.Config.Output.Format)
	if err != nil {
		return nil, err
	}
	return docio.Read(cmd.InOrStdin(), format)
}

// writeDocument stores doc at path. "-" writes stdout in the configured
// output format.
func (c *CLI) writeDocument(cmd *cobra.Command, doc *scene.Document, path string) error {
	if path != stdio {
		return docio.Export(doc, path)
	}
	format, err := docio.ParseFormat(c.Config.Output.Format)
	if err != nil {
		return err
	}
	return docio.Write(doc, cmd.OutOrStdout(), format)
}

// statusWriter returns where human-readable status goes. When the document
// itself is written to stdout, status moves to stderr.
func statusWriter(cmd *cobra.Command, output string) io.Writer {
	if output == stdio {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

// samePath reports whether two paths name the same file.
func samePath(a, b string) bool {
	if a == b {
		return true
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
