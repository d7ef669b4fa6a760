package paths

import (
	"fmt"
	"math"

	"github.com/databonnd/site/internal/types"
)

// Letter geometry for the desktop "ON" mark.
const (
	LetterCount = 10
	// NLetterIDOffset keeps "N" ids clear of the "O" ids 0..9.
	NLetterIDOffset = 10

	oCenterX    = 200.0
	oCenterY    = 150.0
	oBaseRadius = 80.0
	oRadiusStep = 5.0
	oAngleStep  = 20
	oSweep      = 340

	nSpacing = 6
)

// Desktop colors.
const (
	Orange = "#FF5500"
	Black  = "#000000"
)

// DesktopViewBox is the coordinate space of the desktop strokes.
var DesktopViewBox = types.ViewBox{Width: 700, Height: 300}

// Desktop returns the "O" strokes followed by the "N" strokes.
func Desktop() []types.Stroke {
	strokes := make([]types.Stroke, 0, 2*LetterCount)
	strokes = append(strokes, LetterO()...)
	strokes = append(strokes, LetterN()...)
	return strokes
}

// Arc describes one "O" stroke before it is encoded as path data.
type Arc struct {
	CenterX, CenterY float64
	Radius           float64
	StartDeg, EndDeg float64
}

// OArc returns the arc for the i-th "O" stroke: a near-full circle with a
// 20 degree gap that rotates with i.
func OArc(i int) Arc {
	start := float64((i * oAngleStep) % 360)
	return Arc{
		CenterX:  oCenterX,
		CenterY:  oCenterY,
		Radius:   oBaseRadius + float64(i)*oRadiusStep,
		StartDeg: start,
		EndDeg:   start + oSweep,
	}
}

// Start returns the arc's first point.
func (a Arc) Start() (x, y float64) {
	return a.point(a.StartDeg)
}

// End returns the arc's last point.
func (a Arc) End() (x, y float64) {
	return a.point(a.EndDeg)
}

func (a Arc) point(deg float64) (x, y float64) {
	rad := deg * math.Pi / 180
	return a.CenterX + a.Radius*math.Cos(rad), a.CenterY + a.Radius*math.Sin(rad)
}

// PathData encodes the arc as a move followed by a single large-arc,
// positive-sweep arc command.
func (a Arc) PathData() string {
	sx, sy := a.Start()
	ex, ey := a.End()
	r := FormatNumber(a.Radius)
	return "M " + FormatNumber(sx) + " " + FormatNumber(sy) +
		" A " + r + " " + r + " 0 1 1 " + FormatNumber(ex) + " " + FormatNumber(ey)
}

// LetterO returns ten concentric open arcs with ids 0..9.
func LetterO() []types.Stroke {
	strokes := make([]types.Stroke, LetterCount)
	for i := range strokes {
		strokes[i] = types.Stroke{
			ID:          i,
			PathData:    OArc(i).PathData(),
			Color:       parityColor(i, Orange, Black),
			StrokeWidth: letterWidth(i),
			BaseOpacity: DesktopOpacity(i),
		}
	}
	return strokes
}

// LetterN returns ten offset zig-zags with ids 10..19.
func LetterN() []types.Stroke {
	strokes := make([]types.Stroke, LetterCount)
	for i := range strokes {
		id := i + NLetterIDOffset
		strokes[i] = types.Stroke{
			ID:          id,
			PathData:    nPathData(i),
			Color:       parityColor(i, Black, Orange),
			StrokeWidth: letterWidth(i),
			BaseOpacity: DesktopOpacity(id),
		}
	}
	return strokes
}

func nPathData(i int) string {
	offset := i * nSpacing
	half := offset / 2
	left, right := 400+offset, 550+offset
	bottom, top := 250+half, 50-half
	return fmt.Sprintf("M %d %d L %d %d L %d %d L %d %d",
		left, bottom,
		left, top,
		right, bottom,
		right, top,
	)
}

// DesktopOpacity is the base opacity for a desktop stroke id. Both letters
// share the same ramp.
func DesktopOpacity(id int) float64 {
	return 0.5 + float64(id%LetterCount)*0.05
}

func letterWidth(i int) float64 {
	return 2 + float64(i)*0.3
}

func parityColor(i int, even, odd string) string {
	if i%2 == 0 {
		return even
	}
	return odd
}
