package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ericcole/ViewBox/pkg/geo"
	"github.com/ericcole/ViewBox/pkg/host"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// playgroundRing is the anchor cycle order: clockwise around the edges,
// then the center. The side slots are abstract so toggling the direction
// visibly flips them.
var playgroundRing = []geo.Anchor{
	geo.TopLeading, geo.TopCenter, geo.TopTrailing,
	geo.TrailingCenter, geo.BottomTrailing, geo.BottomCenter,
	geo.BottomLeading, geo.LeadingCenter, geo.Center,
}

// =============================================================================
// PlaygroundModel - Interactive box editing
// =============================================================================

// PlaygroundModel is the bubbletea model for the interactive box editor.
type PlaygroundModel struct {
	Box    geo.Box
	Cursor int     // index into playgroundRing
	Step   float64 // units per keypress
	Resize bool    // arrows resize through the anchor instead of moving
}

// NewPlaygroundModel creates a playground model editing box.
func NewPlaygroundModel(box geo.Box) PlaygroundModel {
	return PlaygroundModel{Box: box, Step: 1}
}

func (m PlaygroundModel) Init() tea.Cmd {
	return nil
}

func (m PlaygroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "a":
			m.Cursor = (m.Cursor + 1) % len(playgroundRing)
		case "shift+tab", "A":
			m.Cursor = (m.Cursor + len(playgroundRing) - 1) % len(playgroundRing)
		case "r":
			m.Resize = !m.Resize
		case "d":
			host.SetDirection(!geo.RightToLeft())
		case "g":
			m.Box = m.Box.Aligned()
		case "+", "=":
			m.Step *= 2
		case "-", "_":
			if m.Step > 0.25 {
				m.Step /= 2
			}
		case "up":
			m = m.nudge(0, -m.Step)
		case "down":
			m = m.nudge(0, m.Step)
		case "left":
			m = m.nudge(-m.Step, 0)
		case "right":
			m = m.nudge(m.Step, 0)
		}
	}
	return m, nil
}

// nudge moves or resizes the box through the active anchor.
func (m PlaygroundModel) nudge(dx, dy float64) PlaygroundModel {
	a := playgroundRing[m.Cursor]
	target := m.Box.PointAt(a).Add(geo.Pt(dx, dy))
	if m.Resize {
		m.Box = m.Box.WithAnchorAt(a, target)
	} else {
		m.Box = m.Box.WithAnchorMoved(a, target)
	}
	return m
}

func (m PlaygroundModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("ViewBox Playground"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←↑↓→ nudge  tab anchor  r resize  d direction  g align  +/- step  q quit"))
	b.WriteString("\n\n")

	mode := "move"
	if m.Resize {
		mode = "resize"
	}
	direction := "LTR"
	if geo.RightToLeft() {
		direction = "RTL"
	}
	active := playgroundRing[m.Cursor]
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s   %s %s\n\n",
		listDimStyle.Render("anchor"), listSelectedStyle.Render(active.String()),
		listDimStyle.Render("mode"), StyleValue.Render(mode),
		listDimStyle.Render("direction"), StyleValue.Render(direction),
		listDimStyle.Render("step"), StyleNumber.Render(formatScalar(m.Step))))

	t := newGeoTable([]string{"Field", "Value"}, [][]string{
		{"box", m.Box.String()},
		{"frame", m.Box.Rect().String()},
		{"aligned", m.Box.AlignedRect().String()},
		{"anchor at", m.Box.PointAt(active).String()},
	})
	b.WriteString(t.Render())
	b.WriteString("\n\n")

	for i, a := range playgroundRing {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		b.WriteString(cursor + style.Render(fmt.Sprintf("%-14s %v", a.String(), m.Box.PointAt(a))))
		b.WriteString("\n")
	}

	return b.String()
}

// =============================================================================
// Playground Command
// =============================================================================

// newPlaygroundCmd creates the playground command.
func newPlaygroundCmd() *cobra.Command {
	var opts boxFlags

	cmd := &cobra.Command{
		Use:   "playground",
		Short: "Interactively nudge a box and watch its readout",
		Long: `Playground opens a small terminal UI around one box. Arrow keys nudge the
active anchor, either moving the box or resizing it through that anchor
while the opposite edge stays pinned. Toggling the layout direction shows
how leading and trailing anchors resolve.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			box := geo.BoxFromRect(geo.Rct(0, 0, 200, 120))
			if opts.size != "" {
				var err error
				if box, err = opts.parse(); err != nil {
					return err
				}
			}
			return runPlayground(cmd.Context(), box)
		},
	}

	opts.register(cmd)
	return cmd
}

// runPlayground executes the playground command on box.
func runPlayground(ctx context.Context, box geo.Box) error {
	loggerFromContext(ctx).Debugf("Playground starting with %v", box)

	p := tea.NewProgram(NewPlaygroundModel(box))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	fm, ok := finalModel.(PlaygroundModel)
	if !ok {
		return nil
	}

	printInfo("Final box: %v", fm.Box)
	printKeyValue("frame", fm.Box.Rect().String())
	printKeyValue("aligned", fm.Box.AlignedRect().String())
	return nil
}
