// Package animation plans the looping draw-in and fade timing of background strokes.
//
// Durations are drawn once per stroke when a canvas is planned and stay fixed for
// the life of that canvas. The random source is injected so renders can be made
// reproducible.
package animation

import (
	"math/rand"
	"time"

	"github.com/databonnd/site/internal/paths"
	"github.com/databonnd/site/internal/types"
	"github.com/databonnd/site/internal/viewport"
)

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded pseudo-random Source. The result is not safe
// for concurrent use; plan each canvas with its own Source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

// Fixed returns a Source that always yields v.
func Fixed(v float64) Source {
	return fixedSource(v)
}

// Profile is the animation recipe for one layout variant.
type Profile struct {
	// InitialDraw is the traced fraction each loop starts from.
	InitialDraw float64
	// Opacity holds the three opacity keyframes of one loop.
	Opacity [3]float64
	// Durations are uniform in [MinDuration, MinDuration+Spread).
	MinDuration time.Duration
	Spread      time.Duration
	// DelayStep is multiplied by the stroke id to stagger start times.
	DelayStep time.Duration
}

// Profiles for each viewport mode.
var (
	MobileProfile = Profile{
		InitialDraw: 0.3,
		Opacity:     [3]float64{0.3, 0.6, 0.3},
		MinDuration: 20 * time.Second,
		Spread:      10 * time.Second,
	}
	DesktopProfile = Profile{
		InitialDraw: 0,
		Opacity:     [3]float64{0.6, 0.9, 0.6},
		MinDuration: 15 * time.Second,
		Spread:      5 * time.Second,
		DelayStep:   200 * time.Millisecond,
	}
)

// ProfileFor returns the profile used by a viewport mode.
func ProfileFor(mode viewport.Mode) Profile {
	if mode == viewport.Mobile {
		return MobileProfile
	}
	return DesktopProfile
}

// Timing is the fixed loop period and start delay of one stroke.
type Timing struct {
	StrokeID int
	Duration time.Duration
	Delay    time.Duration
}

// Timing draws the duration for stroke id from src.
func (p Profile) Timing(id int, src Source) Timing {
	return Timing{
		StrokeID: id,
		Duration: p.MinDuration + time.Duration(src.Float64()*float64(p.Spread)),
		Delay:    time.Duration(id) * p.DelayStep,
	}
}

// Plan returns one Timing per stroke, in stroke order.
func Plan(strokes []types.Stroke, p Profile, src Source) []Timing {
	timings := make([]Timing, len(strokes))
	for i, s := range strokes {
		timings[i] = p.Timing(s.ID, src)
	}
	return timings
}

// Track is one looping attribute animation.
type Track struct {
	Attribute string
	Values    []string
}

// Tracks returns the three concurrent loops every stroke runs: draw
// progress, opacity and the traveling dash offset. Paths are expected to
// be normalized to pathLength 1.
func (p Profile) Tracks() []Track {
	return []Track{
		{
			Attribute: "stroke-dasharray",
			Values:    []string{paths.FormatNumber(p.InitialDraw) + " 1", "1 1"},
		},
		{
			Attribute: "opacity",
			Values:    []string{paths.FormatNumber(p.Opacity[0]), paths.FormatNumber(p.Opacity[1]), paths.FormatNumber(p.Opacity[2])},
		},
		{
			Attribute: "stroke-dashoffset",
			Values:    []string{"0", "-1", "0"},
		},
	}
}

// Seconds formats d as an SMIL clock value such as "21.5s".
func Seconds(d time.Duration) string {
	return paths.FormatNumber(d.Seconds()) + "s"
}

