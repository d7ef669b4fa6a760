package rendering

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/databonnd/site/internal/assets"
	"github.com/databonnd/site/internal/types"
	"github.com/databonnd/site/internal/viewport"
)

// Site holds the document metadata shared by every page.
type Site struct {
	Title       string
	Description string
}

// DefaultSite is the metadata used when no configuration overrides it.
var DefaultSite = Site{
	Title:       "Databonnd Corp.",
	Description: "Databonnd Corporation - A leading conglomerate of innovative companies",
}

// Paths of the site's pages.
const (
	HomePath      = "/"
	CompaniesPath = "/our-companies"
	ScriptPath    = "/static/viewport.js"
	LogoPath      = "/images/databonnd-logo.png"
)

// BackgroundPath is the public URL of the standalone canvas for m.
func BackgroundPath(m viewport.Mode) string {
	return "/background-" + m.String() + ".svg"
}

// Document wraps body content in the shared HTML shell.
func Document(site Site, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(site.Title)),
				h.Meta(h.Name("description"), h.Content(site.Description)),
				h.StyleEl(g.Raw(assets.Stylesheet())),
			),
			h.Body(
				g.Group(body),
				h.Script(h.Src(ScriptPath), h.Defer()),
			),
		),
	)
}

// backdrop renders the animated background container the client script
// swaps when the viewport mode changes. The data-background-* attributes
// name the canvases the script fetches when no viewport socket is open.
func backdrop(bg Background) g.Node {
	return h.Div(
		h.ID("background"),
		h.Class("background"),
		h.Data("mode", bg.Layout.Mode.String()),
		h.Data("background-desktop", BackgroundPath(viewport.Desktop)),
		h.Data("background-mobile", BackgroundPath(viewport.Mobile)),
		Canvas(bg),
	)
}

// LandingPage renders the home page: background, logo and call to action.
func LandingPage(site Site, bg Background) g.Node {
	return Document(site,
		h.Div(
			h.Class("page"),
			backdrop(bg),
			h.Div(
				h.Class("content landing"),
				h.Div(
					h.Class("hero fade-in"),
					h.Style("--duration: 2s"),
					h.Div(
						h.Class("fade-up"),
						h.Style("--duration: 1s; --rise: 20px"),
						h.Img(h.Src(LogoPath), h.Alt("DATABONND CONGLOMERATE")),
					),
				),
				h.Div(
					h.Class("cta fade-up"),
					h.Style("--duration: 1s; --delay: 1s; --rise: 20px"),
					h.A(
						h.Href(CompaniesPath),
						h.Span(g.Text("Our Companies")),
						h.Span(h.Class("arrow"), g.Text("→")),
					),
				),
			),
		),
	)
}

// CompaniesPage renders the subsidiaries grid in declaration order.
func CompaniesPage(site Site, bg Background, companies []types.Company) g.Node {
	cards := make([]g.Node, len(companies))
	for i, c := range companies {
		cards[i] = CompanyCard(c, i)
	}

	return Document(site,
		h.Div(
			h.Class("page"),
			backdrop(bg),
			h.Div(
				h.Class("content"),
				h.Div(
					h.Class("fade-up"),
					h.Style("--duration: .5s; --rise: -20px; text-align: left; margin-bottom: 3rem"),
					h.A(h.Class("back-link"), h.Href(HomePath), g.Text("← Back to Home")),
				),
				h.H1(h.Class("fade-in"), h.Style("--duration: .5s"), g.Text("Our Companies")),
				h.Div(h.Class("grid"), g.Group(cards)),
			),
		),
	)
}
