// Package types provides type definitions for structured data used throughout the site.
package types

// Stroke is one decorative vector path in a background canvas.
// Strokes are immutable once generated.
type Stroke struct {
	ID          int     `json:"id"`
	PathData    string  `json:"d"`
	Color       string  `json:"color"`
	StrokeWidth float64 `json:"stroke_width"`
	BaseOpacity float64 `json:"base_opacity"`
}

// ViewBox is the coordinate space of a canvas, anchored at the origin.
type ViewBox struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// StrokeIDs returns the ids of strokes in order.
func StrokeIDs(strokes []Stroke) []int {
	ids := make([]int, len(strokes))
	for i, s := range strokes {
		ids[i] = s.ID
	}
	return ids
}

// HasUniqueIDs reports whether no two strokes share an id.
func HasUniqueIDs(strokes []Stroke) bool {
	seen := make(map[int]bool, len(strokes))
	for _, s := range strokes {
		if seen[s.ID] {
			return false
		}
		seen[s.ID] = true
	}
	return true
}
