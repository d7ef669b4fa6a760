// Package paths generates the decorative stroke geometry drawn behind every page.
// Generators are pure: the same call always yields the same strokes.
package paths

import "strconv"

// FormatNumber formats v with the shortest representation that round-trips.
// Every SVG attribute value in the site is written through it.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
