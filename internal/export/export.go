// Package export writes the site to a directory as static files.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	g "maragu.dev/gomponents"

	"github.com/databonnd/site/internal/animation"
	"github.com/databonnd/site/internal/assets"
	"github.com/databonnd/site/internal/rendering"
	"github.com/databonnd/site/internal/types"
	"github.com/databonnd/site/internal/viewport"
)

// Options configures an export. A zero Seed draws a fresh one per run.
type Options struct {
	OutDir    string
	Mode      viewport.Mode
	Seed      int64
	Site      rendering.Site
	Companies []types.Company
}

// Result lists the files written, relative to OutDir, in sorted order,
// and the seed the backgrounds were planned with.
type Result struct {
	OutDir string
	Seed   int64
	Files  []string
}

// file is one output path and its rendered content.
type file struct {
	rel  string
	data func() ([]byte, error)
}

// Run renders every page, background and asset and writes them under
// opts.OutDir concurrently. Local links in the written pages are checked
// against the produced files.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.OutDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if opts.Site.Title == "" {
		opts.Site = rendering.DefaultSite
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	opts.Companies = localLogos(opts.Companies)

	files, err := plan(opts)
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		written []string
		pages   = map[string][]byte{}
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(8)
	for _, f := range files {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			data, err := f.data()
			if err != nil {
				return fmt.Errorf("rendering %s failed: %w", f.rel, err)
			}
			if err := writeFile(opts.OutDir, f.rel, data); err != nil {
				return err
			}

			mu.Lock()
			written = append(written, f.rel)
			if strings.HasSuffix(f.rel, ".html") {
				pages[f.rel] = data
			}
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(written)
	if err := checkLinks(pages, written); err != nil {
		return nil, err
	}

	log.Printf("[export] wrote %d files to %s (seed %d)", len(written), opts.OutDir, opts.Seed)
	return &Result{OutDir: opts.OutDir, Seed: opts.Seed, Files: written}, nil
}

// localLogos points every company whose logo names an image that is not
// embedded at the placeholder, matching what the server answers for it.
// Logos outside /images/ are left for the link check.
func localLogos(companies []types.Company) []types.Company {
	out := make([]types.Company, len(companies))
	for i, c := range companies {
		if name, ok := strings.CutPrefix(c.Logo, "/images/"); ok {
			if _, found := assets.Image(name); !found {
				log.Printf("[export] %s: logo %s not found, using %s", c.Name, c.Logo, assets.PlaceholderPath)
				c.Logo = assets.PlaceholderPath
			}
		}
		out[i] = c
	}
	return out
}

// plan lists the files of the export. Each page gets its own source seeded
// from opts.Seed so output is reproducible without sharing a source across
// goroutines.
func plan(opts Options) ([]file, error) {
	source := func() animation.Source { return animation.NewSource(opts.Seed) }

	files := []file{
		{rel: "index.html", data: func() ([]byte, error) {
			return render(rendering.LandingPage(opts.Site, rendering.NewBackground(opts.Mode, source())))
		}},
		{rel: "our-companies/index.html", data: func() ([]byte, error) {
			bg := rendering.NewBackground(opts.Mode, source())
			return render(rendering.CompaniesPage(opts.Site, bg, opts.Companies))
		}},
	}

	for _, mode := range []viewport.Mode{viewport.Desktop, viewport.Mobile} {
		files = append(files, file{
			rel: strings.TrimPrefix(rendering.BackgroundPath(mode), "/"),
			data: func() ([]byte, error) {
				var buf bytes.Buffer
				err := rendering.WriteSVG(&buf, rendering.NewBackground(mode, source()))
				return buf.Bytes(), err
			},
		})
	}

	for _, name := range []string{"viewport.js", "site.css"} {
		asset, ok := assets.Static(name)
		if !ok {
			return nil, fmt.Errorf("missing static asset %s", name)
		}
		files = append(files, file{rel: "static/" + name, data: constant(asset.Data)})
	}

	images, err := assets.Images()
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	for _, name := range images {
		asset, _ := assets.Image(name)
		files = append(files, file{rel: "images/" + name, data: constant(asset.Data)})
	}
	return files, nil
}

func constant(data []byte) func() ([]byte, error) {
	return func() ([]byte, error) { return data, nil }
}

func render(n g.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := rendering.Write(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeFile(outDir, rel string, data []byte) error {
	full := filepath.Join(outDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return &WriteError{Path: full, Message: "failed to create directory", Cause: err}
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return &WriteError{Path: full, Message: "failed to write file", Cause: err}
	}
	return nil
}

// linkAttrs are the attributes whose values checkLinks resolves.
var linkAttrs = []string{"href", "src", "data-background-desktop", "data-background-mobile"}

// checkLinks resolves every local reference in pages against written.
// External links and the websocket endpoint are skipped.
func checkLinks(pages map[string][]byte, written []string) error {
	have := make(map[string]bool, len(written))
	for _, rel := range written {
		have["/"+rel] = true
		if strings.HasSuffix(rel, "/index.html") {
			have["/"+strings.TrimSuffix(rel, "/index.html")] = true
		}
		if rel == "index.html" {
			have["/"] = true
		}
	}

	var broken []string
	for rel, data := range pages {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", rel, err)
		}
		doc.Find("a[href], img[src], script[src], #background").Each(func(_ int, sel *goquery.Selection) {
			for _, attr := range linkAttrs {
				ref, ok := sel.Attr(attr)
				if !ok || !strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "//") {
					continue
				}
				if !have[path.Clean(ref)] {
					broken = append(broken, rel+" -> "+ref)
				}
			}
		})
	}

	if len(broken) > 0 {
		sort.Strings(broken)
		return &BrokenLinkError{Links: broken}
	}
	return nil
}
