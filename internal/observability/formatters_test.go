package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/databonnd/site/internal/animation"
	"github.com/databonnd/site/internal/paths"
	"github.com/databonnd/site/internal/types"
	"github.com/databonnd/site/internal/viewport"
)

func TestPrintLayout(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	layout := paths.ForMode(viewport.Desktop)
	timings := animation.Plan(layout.Strokes, animation.DesktopProfile, animation.Fixed(0))
	p.PrintLayout(layout, timings)
	output := buf.String()

	assert.Contains(t, output, "BACKGROUND LAYOUT")
	assert.Contains(t, output, "desktop")
	assert.Contains(t, output, "700x300")
	assert.Contains(t, output, "Strokes:  20")
	assert.Contains(t, output, "... and 15 more")
}

func TestPrintLayout_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintLayout(paths.Layout{}, nil)
	assert.Empty(t, buf.String())
}

func TestPrintCatalog(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	zizgen := types.NewCompany("/images/zizgen-logo.png", "Zizgen", "AI")
	zizgen.WebsiteURL = "https://www.zizgen.co"
	zizgen.ShowWebsiteSection = true
	zizgen.ZoomLogo = true
	circles := types.NewCompany("/images/circles-logo.png", "Circles", "")
	circles.ShowDetails = false

	p.PrintCatalog([]types.Company{zizgen, circles})
	output := buf.String()

	assert.Contains(t, output, "COMPANY CATALOG")
	assert.Contains(t, output, "#1  Zizgen")
	assert.Contains(t, output, "[details, website, zoom]")
	assert.Contains(t, output, "#2  Circles")
}

func TestPrintCatalog_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCatalog(nil)
	assert.Empty(t, buf.String())
}

func TestPrintWrittenFiles_Truncates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	files := make([]string, 12)
	for i := range files {
		files[i] = fmt.Sprintf("images/file-%d.png", i)
	}
	p.PrintWrittenFiles("/tmp/site", files)
	output := buf.String()

	assert.Contains(t, output, "EXPORTED FILES")
	assert.Contains(t, output, "/tmp/site")
	assert.Contains(t, output, "... and 2 more files")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}
