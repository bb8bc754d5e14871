package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/PeterMinin/grid-strategy/pkg/errors"
	"github.com/PeterMinin/grid-strategy/pkg/grid"
	"github.com/PeterMinin/grid-strategy/pkg/render/sink"
)

// Preview styles
var (
	previewHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	previewStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
	previewErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// PreviewModel - Interactive layout explorer
// =============================================================================

// PreviewModel is the bubbletea model for the preview command.
type PreviewModel struct {
	N         int
	Alignment grid.Alignment
	Width     int

	layout grid.Layout
	err    error
}

// NewPreviewModel creates a preview model showing n subplots.
func NewPreviewModel(n int, a grid.Alignment) PreviewModel {
	m := PreviewModel{N: n, Alignment: a, Width: sink.DefaultTextWidth}
	m.recompute()
	return m
}

func (m *PreviewModel) recompute() {
	m.layout, m.err = grid.Compute(m.N, m.Alignment)
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "tab":
			m.Alignment = m.Alignment.Next()
		case "left", "h", "shift+tab":
			m.Alignment = m.Alignment.Prev()
		case "+", "=", "up", "k":
			if m.N < errors.MaxSubplots {
				m.N++
			}
		case "-", "_", "down", "j":
			if m.N > 1 {
				m.N--
			}
		default:
			return m, nil
		}
		m.recompute()
	case tea.WindowSizeMsg:
		m.Width = max(20, msg.Width-2)
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Grid Preview"))
	b.WriteString("\n")
	b.WriteString(previewHelpStyle.Render("←/→ alignment  +/- subplots  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(previewErrorStyle.Render(errors.UserMessage(m.err)))
		b.WriteString("\n")
		return b.String()
	}

	status := fmt.Sprintf("n=%d  align=%s  rows=%s  grid=%d×%d",
		m.N, m.Alignment, formatArrangement(m.layout.Arrangement),
		m.layout.Dimensions.Rows, m.layout.Dimensions.Cols)
	b.WriteString(previewStatusStyle.Render(status))
	b.WriteString("\n\n")
	b.WriteString(sink.RenderText(m.layout, nil, m.Width))
	b.WriteString("\n")

	return b.String()
}

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var flags layoutFlags
	var n int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Explore layouts interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateCount(n); err != nil {
				return err
			}
			opts := c.Config.Options(n)
			flags.apply(cmd, &opts)
			a, err := grid.ParseAlignment(opts.Alignment)
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewPreviewModel(n, a),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&n, "n", "n", 7, "initial number of subplots")

	return cmd
}
