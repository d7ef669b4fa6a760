package viewport

import (
	"math"
	"net/http"
	"strconv"
	"strings"
)

// HintHeader is advertised via Accept-CH so browsers send their viewport width.
const HintHeader = "Sec-CH-Viewport-Width"

// legacyHintHeader is the pre-standard client hint some browsers still send.
const legacyHintHeader = "Viewport-Width"

// FromRequest returns the viewport width hinted by the client, from the
// client-hint headers or the "vw" query parameter, in that order.
func FromRequest(r *http.Request) (width int, ok bool) {
	for _, h := range []string{HintHeader, legacyHintHeader} {
		if w, ok := parseWidth(r.Header.Get(h)); ok {
			return w, true
		}
	}
	return parseWidth(r.URL.Query().Get("vw"))
}

// ModeForRequest classifies the hinted width, falling back to Desktop when
// the client sent no usable hint.
func ModeForRequest(r *http.Request) Mode {
	w, ok := FromRequest(r)
	if !ok {
		return Desktop
	}
	return Classify(w)
}

func parseWidth(v string) (int, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return WidthFromFloat(f)
}

// MaxWidth caps reported widths so the int conversion cannot overflow.
const MaxWidth = math.MaxInt32

// WidthFromFloat truncates a reported width to whole CSS pixels. NaN,
// infinities and non-positive values are rejected; widths beyond MaxWidth
// are clamped to it.
func WidthFromFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	if f >= MaxWidth {
		return MaxWidth, true
	}
	return int(f), true
}
