package paths

import (
	"fmt"

	"github.com/databonnd/site/internal/types"
)

// MobileCount is the number of strokes in the mobile sheaf.
const MobileCount = 36

// MobileViewBox is the coordinate space of the mobile strokes.
var MobileViewBox = types.ViewBox{Width: 696, Height: 316}

// Mobile returns a fanned sheaf of cubic curves, each shifted further from
// the previous one, with opacity and width rising with the index.
func Mobile() []types.Stroke {
	strokes := make([]types.Stroke, MobileCount)
	for i := range strokes {
		strokes[i] = mobileStroke(i)
	}
	return strokes
}

func mobileStroke(i int) types.Stroke {
	x0, y0 := 380-i*5, 189+i*6
	d := fmt.Sprintf("M-%d -%dC-%d -%d -%d %d %d %dC%d %d %d %d %d %d",
		x0, y0,
		x0, y0,
		312-i*5, 216-i*6,
		152-i*5, 343-i*6,
		616-i*5, 470-i*6,
		684-i*5, 875-i*6,
		684-i*5, 875-i*6,
	)

	opacity := MobileOpacity(i)
	return types.Stroke{
		ID:          i,
		PathData:    d,
		Color:       "rgba(15,23,42," + FormatNumber(opacity) + ")",
		StrokeWidth: 0.5 + float64(i)*0.03,
		BaseOpacity: opacity,
	}
}

// MobileOpacity is the base opacity of the i-th mobile stroke.
func MobileOpacity(i int) float64 {
	return 0.1 + float64(i)*0.03
}
