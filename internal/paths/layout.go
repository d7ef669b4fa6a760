package paths

import (
	"github.com/databonnd/site/internal/types"
	"github.com/databonnd/site/internal/viewport"
)

// Layout is the background variant resolved for one render.
type Layout struct {
	Mode    viewport.Mode
	Title   string
	ViewBox types.ViewBox
	Strokes []types.Stroke
	// CurrentColor strokes inherit the page text color instead of each
	// stroke's literal color.
	CurrentColor bool
}

// ForMode resolves the background layout for a viewport mode.
func ForMode(mode viewport.Mode) Layout {
	if mode == viewport.Mobile {
		return Layout{
			Mode:         viewport.Mobile,
			Title:        "Background Paths",
			ViewBox:      MobileViewBox,
			Strokes:      Mobile(),
			CurrentColor: true,
		}
	}
	return Layout{
		Mode:    viewport.Desktop,
		Title:   "ON Background",
		ViewBox: DesktopViewBox,
		Strokes: Desktop(),
	}
}
