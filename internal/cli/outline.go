package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/tableaxis/pkg/errors"
	"github.com/matzehuels/tableaxis/pkg/pipeline"
	"github.com/matzehuels/tableaxis/pkg/render/outline"
	"github.com/matzehuels/tableaxis/pkg/scene"
)

const (
	outlineDOT = "dot"
	outlineSVG = "svg"
)

// outlineOpts holds the command-line flags for the outline command.
type outlineOpts struct {
	node     string // root node (id or name); default: selection, else page
	format   string // dot or svg
	output   string // output file; default stdout
	detailed bool   // sizes, layout and positioning in labels
	depth    int    // maximum depth, 0 for unlimited
}

// outlineCommand creates the outline command, which draws the node tree of
// a document (or one subtree) as a Graphviz diagram.
func (c *CLI) outlineCommand() *cobra.Command {
	opts := outlineOpts{format: outlineDOT}

	cmd := &cobra.Command{
		Use:   "outline [file]",
		Short: "Render the node tree of a document as DOT or SVG",
		Example: `  tableaxis outline pricing.json --detailed
  tableaxis outline pricing.json --node Grid -f svg -o grid.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			root, err := outlineRoot(doc, opts.node)
			if err != nil {
				return err
			}
			data, err := c.renderOutline(cmd, root, opts)
			if err != nil {
				return err
			}
			if opts.output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(opts.output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", opts.output, err)
			}
			printFile(cmd.OutOrStdout(), opts.output)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.node, "node", "", "root node by id or name (default: selection, else the page)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot or svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show sizes, layout and positioning")
	cmd.Flags().IntVar(&opts.depth, "depth", 0, "maximum depth below the root (0 for unlimited)")

	return cmd
}

func (c *CLI) renderOutline(cmd *cobra.Command, root *scene.Node, opts outlineOpts) ([]byte, error) {
	dot := outline.ToDOT(root, outline.Options{Detailed: opts.detailed, MaxDepth: opts.depth})
	switch strings.ToLower(opts.format) {
	case outlineDOT:
		return []byte(dot), nil
	case outlineSVG:
		spinner := newSpinnerWithContext(cmd.Context(), cmd.ErrOrStderr(), "Rendering outline...")
		spinner.Start()
		svg, err := outline.RenderSVG(cmd.Context(), dot)
		spinner.Stop()
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("rendered outline", "root", root.ID, "bytes", len(svg))
		return svg, nil
	}
	return nil, apperr.New(apperr.ErrCodeInvalidFormat, "invalid outline format: %q (must be dot or svg)", opts.format)
}

// outlineRoot picks the node to draw: ref if given, else the single
// selected node, else the page.
func outlineRoot(doc *scene.Document, ref string) (*scene.Node, error) {
	if ref != "" {
		ids, err := pipeline.Resolve(doc, []string{ref})
		if err != nil {
			return nil, err
		}
		n, _ := doc.Node(ids[0])
		return n, nil
	}
	if sel := doc.Selection(); len(sel) == 1 {
		return sel[0], nil
	}
	return doc.Page(), nil
}
