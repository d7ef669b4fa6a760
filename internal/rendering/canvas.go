package rendering

import (
	"io"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/databonnd/site/internal/animation"
	"github.com/databonnd/site/internal/paths"
	"github.com/databonnd/site/internal/types"
	"github.com/databonnd/site/internal/viewport"
)

const svgNS = "http://www.w3.org/2000/svg"

// Background is a resolved layout together with its planned stroke timing.
type Background struct {
	Layout  paths.Layout
	Timings []animation.Timing
}

// NewBackground resolves the layout for mode and draws one duration per
// stroke from src.
func NewBackground(mode viewport.Mode, src animation.Source) Background {
	layout := paths.ForMode(mode)
	return Background{
		Layout:  layout,
		Timings: animation.Plan(layout.Strokes, animation.ProfileFor(mode), src),
	}
}

// Canvas renders the background as an inline SVG element with one
// animated path per stroke.
func Canvas(bg Background) g.Node {
	layout := bg.Layout
	profile := animation.ProfileFor(layout.Mode)
	tracks := profile.Tracks()

	children := make([]g.Node, 0, len(layout.Strokes)+1)
	children = append(children, g.El("title", g.Text(layout.Title)))
	for i, s := range layout.Strokes {
		children = append(children, strokePath(s, timingAt(bg.Timings, i, s.ID, profile), tracks, layout.CurrentColor))
	}

	return g.El("svg",
		g.Attr("xmlns", svgNS),
		g.Attr("viewBox", viewBox(layout.ViewBox)),
		g.Attr("fill", "none"),
		g.Attr("preserveAspectRatio", "xMidYMid slice"),
		h.Class("canvas canvas-"+layout.Mode.String()),
		h.Data("mode", layout.Mode.String()),
		g.Group(children),
	)
}

// WriteSVG writes a standalone SVG document for bg.
func WriteSVG(w io.Writer, bg Background) error {
	if _, err := io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"); err != nil {
		return &RenderError{Message: "failed to write svg prolog", Cause: err}
	}
	return Write(w, Canvas(bg))
}

// CanvasString renders bg as an inline SVG fragment.
func CanvasString(bg Background) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, Canvas(bg)); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write renders n to w.
func Write(w io.Writer, n g.Node) error {
	if err := n.Render(w); err != nil {
		return &RenderError{Message: "failed to write markup", Cause: err}
	}
	return nil
}

func strokePath(s types.Stroke, tm animation.Timing, tracks []animation.Track, currentColor bool) g.Node {
	color := s.Color
	if currentColor {
		color = "currentColor"
	}

	nodes := []g.Node{
		g.Attr("d", s.PathData),
		g.Attr("stroke", color),
		g.Attr("stroke-width", paths.FormatNumber(s.StrokeWidth)),
		g.Attr("stroke-opacity", paths.FormatNumber(s.BaseOpacity)),
		g.Attr("fill", "none"),
		g.Attr("pathLength", "1"),
		g.Attr("stroke-dasharray", tracks[0].Values[0]),
		h.Data("stroke-id", strconv.Itoa(s.ID)),
	}
	for _, tr := range tracks {
		nodes = append(nodes, g.El("animate",
			g.Attr("attributeName", tr.Attribute),
			g.Attr("values", strings.Join(tr.Values, ";")),
			g.Attr("dur", animation.Seconds(tm.Duration)),
			g.Attr("begin", animation.Seconds(tm.Delay)),
			g.Attr("calcMode", "linear"),
			g.Attr("repeatCount", "indefinite"),
		))
	}
	return g.El("path", nodes...)
}

// timingAt returns the planned timing for the i-th stroke, or the
// profile's shortest loop when no plan was supplied for it.
func timingAt(timings []animation.Timing, i, id int, p animation.Profile) animation.Timing {
	if i < len(timings) && timings[i].StrokeID == id {
		return timings[i]
	}
	return p.Timing(id, animation.Fixed(0))
}

func viewBox(vb types.ViewBox) string {
	return "0 0 " + paths.FormatNumber(vb.Width) + " " + paths.FormatNumber(vb.Height)
}

