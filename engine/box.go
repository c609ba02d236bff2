package engine

import "github.com/charmbracelet/lipgloss"

// BoxFormatter is spec.md §6's "box" collaborator: it right-pads
// arbitrary content to a rectangle before a caller's RenderFunc hands
// it to the engine. It is not used by the tick algorithm itself (that
// padding is ansiterm.PadToWidth's job, C1) — it is a convenience for
// render functions that want a bordered or minimum-size panel as their
// block content, the same way a teacher CLI would compose widgets
// before handing the result to a terminal writer.
type BoxFormatter interface {
	Format(content string) string
}

// BoxOptions configures a BoxFormatter.
type BoxOptions struct {
	MinWidth  int
	MinHeight int
	// Border, if true, draws a rounded border around the content.
	Border bool
}

type lipglossBox struct {
	style lipgloss.Style
}

// NewBoxFormatter returns the default BoxFormatter, built on
// lipgloss.Style.
func NewBoxFormatter(opts BoxOptions) BoxFormatter {
	style := lipgloss.NewStyle().
		Width(opts.MinWidth).
		Height(opts.MinHeight)
	if opts.Border {
		style = style.Border(lipgloss.RoundedBorder())
	}
	return &lipglossBox{style: style}
}

func (b *lipglossBox) Format(content string) string {
	return b.style.Render(content)
}
