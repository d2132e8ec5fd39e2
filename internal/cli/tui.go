package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tableaxis/pkg/api"
	apperr "github.com/matzehuels/tableaxis/pkg/errors"
	docio "github.com/matzehuels/tableaxis/pkg/io"
	"github.com/matzehuels/tableaxis/pkg/pipeline"
	"github.com/matzehuels/tableaxis/pkg/scene"
	"github.com/matzehuels/tableaxis/pkg/table"
)

// Panel styles
var (
	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Foreground(colorGray)
	buttonActiveStyle = buttonStyle.
				BorderForeground(colorCyan).
				Foreground(colorCyan).
				Bold(true)
	panelDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	buttonSwitch = iota
	buttonClose
)

var buttonLabels = [...]string{"Switch Axis", "Close"}

// =============================================================================
// PanelModel - Interactive switch panel
// =============================================================================

// switchDoneMsg carries the outcome of one switch back to the panel.
type switchDoneMsg struct {
	result *pipeline.Result
	err    error
}

// PanelModel is the bubbletea model of the switch panel. It offers the two
// actions of the panel, Switch Axis and Close, and shows the status line
// of the last switch.
type PanelModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	doc    *scene.Document
	opts   pipeline.Options

	// snapshotPath is used for the first switch only, so undo returns to
	// the document as it was when the panel opened.
	snapshotPath   string
	snapshotFormat docio.Format

	Cursor   int
	Status   string
	Failed   bool
	Switched int
	Busy     bool
	Preview  *api.InspectResponse
}

// NewPanelModel creates a panel for doc. opts.Select, if set, is applied
// before the first switch.
func NewPanelModel(ctx context.Context, runner *pipeline.Runner, doc *scene.Document, opts pipeline.Options) PanelModel {
	m := PanelModel{
		ctx:            ctx,
		runner:         runner,
		doc:            doc,
		opts:           opts,
		snapshotPath:   opts.SnapshotPath,
		snapshotFormat: opts.SnapshotFormat,
	}
	m.opts.SnapshotPath = ""
	m.refresh()
	return m
}

// refresh recomputes the grid preview of the current selection.
func (m *PanelModel) refresh() {
	ex, err := m.runner.Inspect(m.ctx, m.doc, pipeline.Options{Select: m.opts.Select, Logger: m.opts.Logger})
	if ex == nil {
		m.Preview = nil
		if m.Status == "" {
			m.Status = table.Status(table.AxisNone, err)
			m.Failed = true
		}
		return
	}
	desc := api.Describe(ex)
	desc.Switchable = err == nil
	if err != nil {
		desc.Problem = apperr.UserMessage(err)
	}
	m.Preview = &desc
}

func (m PanelModel) Init() tea.Cmd {
	return nil
}

func (m PanelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "s":
			return m.startSwitch()
		case "left", "h", "shift+tab":
			if m.Cursor > buttonSwitch {
				m.Cursor--
			}
		case "right", "l", "tab":
			if m.Cursor < buttonClose {
				m.Cursor++
			}
		case "enter", " ":
			if m.Cursor == buttonClose {
				return m, tea.Quit
			}
			return m.startSwitch()
		}
	case switchDoneMsg:
		m.Busy = false
		if msg.err != nil {
			m.Status = table.Status(table.AxisNone, msg.err)
			m.Failed = true
			return m, nil
		}
		m.Status = msg.result.Status
		m.Failed = false
		m.Switched++
		// The rebuilt table is selected now; keep following it rather than
		// resolving the original references again.
		m.opts.Select = []string{msg.result.Table.ID}
		m.refresh()
	}
	return m, nil
}

func (m PanelModel) startSwitch() (tea.Model, tea.Cmd) {
	if m.Busy {
		return m, nil
	}
	m.Busy = true
	opts := m.opts
	if m.Switched == 0 {
		opts.SnapshotPath = m.snapshotPath
		opts.SnapshotFormat = m.snapshotFormat
	}
	ctx, runner, doc := m.ctx, m.runner, m.doc
	return m, func() tea.Msg {
		res, err := runner.Switch(ctx, doc, opts)
		return switchDoneMsg{result: res, err: err}
	}
}

func (m PanelModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Table Axis"))
	b.WriteString("\n")
	b.WriteString(panelDimStyle.Render("s switch  ←/→ choose  ⏎ press  q close"))
	b.WriteString("\n\n")

	if p := m.Preview; p != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleValue.Render(p.Axis), panelDimStyle.Render(fmt.Sprintf("%d×%d", p.Rows, p.Cols))))
		b.WriteString(renderGrid(*p))
		b.WriteString("\n")
	}

	buttons := make([]string, len(buttonLabels))
	for i, label := range buttonLabels {
		style := buttonStyle
		if i == m.Cursor {
			style = buttonActiveStyle
		}
		buttons[i] = style.Render(label)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	b.WriteString("\n")

	switch {
	case m.Busy:
		b.WriteString(panelDimStyle.Render("switching..."))
	case m.Status == "":
	case m.Failed:
		b.WriteString(StyleError.Render(m.Status))
	default:
		b.WriteString(StyleSuccess.Render(m.Status))
	}
	b.WriteString("\n")

	return b.String()
}

// panelCommand creates the panel command. Switches made in the panel are
// written back to the file when it closes.
func (c *CLI) panelCommand() *cobra.Command {
	var sel selectFlags
	var noSnapshot bool

	cmd := &cobra.Command{
		Use:   "panel [file]",
		Short: "Open an interactive panel to switch the selected table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			format, err := docio.FormatFromPath(path)
			if err != nil {
				return err
			}
			doc, err := docio.Import(path)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(noSnapshot)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := pipeline.Options{
				Select:         sel.refs,
				Name:           c.Config.Table.Name,
				SnapshotPath:   path,
				SnapshotFormat: format,
				// The panel owns the terminal; log lines would tear its view.
				Logger: log.New(io.Discard),
			}
			final, err := tea.NewProgram(NewPanelModel(cmd.Context(), runner, doc, opts), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			m := final.(PanelModel)
			if m.Switched == 0 {
				printInfo(out, "No changes")
				return nil
			}
			if err := docio.Export(doc, path); err != nil {
				return err
			}
			if m.Failed {
				printWarning(out, "%s", m.Status)
			}
			printSuccess(out, "Saved %d switches", m.Switched)
			printFile(out, path)
			return nil
		},
	}

	sel.register(cmd)
	cmd.Flags().BoolVar(&noSnapshot, "no-snapshot", false, "do not store an undo snapshot")
	return cmd
}
