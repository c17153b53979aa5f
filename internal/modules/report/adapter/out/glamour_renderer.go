package out

import (
	"github.com/charmbracelet/glamour"

	reportout "roadmap/internal/modules/report/port/out"
)

type GlamourRenderer struct {
	style string
}

// NewGlamourRenderer uses the named glamour style, "dark" when empty.
func NewGlamourRenderer(style string) reportout.TerminalRenderer {
	if style == "" {
		style = "dark"
	}
	return GlamourRenderer{style: style}
}

func (g GlamourRenderer) Render(markdown string, width int) (string, error) {
	if width < 0 {
		width = 0
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(g.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}
