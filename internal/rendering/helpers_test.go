package rendering

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

// parse renders n and loads it into a goquery document.
func parse(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, Write(&sb, n))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return doc
}
