package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/drafthaus/orthodraw/pkg/drawing"
	"github.com/drafthaus/orthodraw/pkg/drawing/sink"
	"github.com/drafthaus/orthodraw/pkg/drawing/styles"
	"github.com/drafthaus/orthodraw/pkg/errors"
)

// Approximate pixel size of one terminal cell, used to derive a synthetic
// viewport from the terminal size so that resizing the terminal rescales
// the drawing exactly like a resize observer would.
const (
	cellWidthPx  = 8.0
	cellHeightPx = 16.0
)

// tuiField is one editable input of the form.
type tuiField struct {
	label string
	value string
}

// tuiModel is the bubbletea model for the interactive input form. It
// mirrors the drawing tool's surface: five numeric fields, a calculate
// action, and recomputation on every terminal resize.
type tuiModel struct {
	fields [5]tuiField
	focus  int

	vp         drawing.Viewport
	drawing    drawing.Drawing
	calculated bool

	theme     styles.Theme
	exportTo  string
	status    string
	statusErr bool
}

func newTUIModel(theme styles.Theme, exportTo string) tuiModel {
	m := tuiModel{
		fields: [5]tuiField{
			{label: "Width"},
			{label: "Height"},
			{label: "Depth"},
			{label: "Area width"},
			{label: "Area height"},
		},
		vp:       drawing.Viewport{AvailW: 800, AvailH: 600},
		theme:    theme,
		exportTo: exportTo,
	}
	m.drawing = m.compose()
	return m
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		// Resize trigger: keep the last-known inputs, refit the scale.
		m.vp = drawing.Viewport{
			AvailW: float64(msg.Width) * cellWidthPx,
			AvailH: float64(msg.Height) * cellHeightPx,
		}
		m.drawing = m.compose()
	}
	return m, nil
}

func (m tuiModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "up", "shift+tab":
		if m.focus > 0 {
			m.focus--
		}
	case "down", "tab":
		if m.focus < len(m.fields)-1 {
			m.focus++
		}

	case "backspace":
		f := &m.fields[m.focus]
		if len(f.value) > 0 {
			f.value = f.value[:len(f.value)-1]
		}

	case "enter":
		// Calculate trigger: everything is recomputed from scratch.
		m.calculated = true
		m.drawing = m.compose()
		m.status = "calculated"
		m.statusErr = false

	case "s":
		svg := sink.RenderSVG(m.drawing, m.vp, sink.WithTheme(m.theme))
		if err := os.WriteFile(m.exportTo, svg, 0o644); err != nil {
			m.status = fmt.Sprintf("export failed: %v", err)
			m.statusErr = true
		} else {
			m.status = "exported " + m.exportTo
			m.statusErr = false
		}

	default:
		if isNumericKey(msg.String()) {
			m.fields[m.focus].value += msg.String()
		}
	}
	return m, nil
}

// compose runs the drawing pipeline with the current form values.
func (m tuiModel) compose() drawing.Drawing {
	raw := drawing.RawInputs{
		Width:      m.fields[0].value,
		Height:     m.fields[1].value,
		Depth:      m.fields[2].value,
		AreaWidth:  m.fields[3].value,
		AreaHeight: m.fields[4].value,
	}
	solid, area := raw.Normalize()
	return drawing.Compose(solid, area, m.vp, m.calculated)
}

func (m tuiModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("orthodraw"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("↑/↓ field  ⏎ calculate  s export SVG  q quit"))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		cursor := "  "
		style := styleValue
		if i == m.focus {
			cursor = "▸ "
			style = styleFocused
		}
		value := f.value
		if value == "" {
			value = styleDim.Render("(default)")
		}
		b.WriteString(fmt.Sprintf("%s%-12s %s\n", cursor, f.label, style.Render(value)))
	}
	b.WriteString("\n")

	b.WriteString(m.spacingTable())
	b.WriteString("\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("scale %.2f px/unit  viewport %.0fx%.0f",
		m.drawing.Layout.Scale, m.vp.AvailW, m.vp.AvailH)))
	b.WriteString("\n")

	if m.status != "" {
		style := styleSuccess
		if m.statusErr {
			style = styleError
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	return b.String()
}

// spacingTable renders the h0/h1/v0/v1 summary. Before the first
// calculate the values show as unknown, matching the drawing itself.
func (m tuiModel) spacingTable() string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	row := make([]string, 0, 4)
	for _, e := range m.drawing.Spacing.Summary() {
		if m.calculated {
			row = append(row, e.Value)
		} else {
			row = append(row, "—")
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("h0", "h1", "v0", "v1").
		Rows(row).
		StyleFunc(func(r, _ int) lipgloss.Style {
			if r == -1 {
				return headerStyle
			}
			return styleValue
		})
	return t.Render()
}

func isNumericKey(s string) bool {
	if len(s) != 1 {
		return false
	}
	return (s[0] >= '0' && s[0] <= '9') || s[0] == '.'
}

// tuiCommand creates the tui command running the interactive form.
func (c *CLI) tuiCommand() *cobra.Command {
	var (
		themeName string
		exportTo  string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Edit drawing inputs interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			if themeName == "" {
				themeName = cfg.Render.Theme
			}
			if err := errors.ValidateTheme(themeName); err != nil {
				return err
			}
			theme, _ := styles.ByName(themeName)

			p := tea.NewProgram(newTUIModel(theme, exportTo))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&themeName, "theme", "", "visual theme: paper (default), blueprint")
	cmd.Flags().StringVarP(&exportTo, "output", "o", "drawing.svg", "SVG export path for the s key")

	return cmd
}
