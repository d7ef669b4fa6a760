package rendering

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/databonnd/site/internal/animation"
	"github.com/databonnd/site/internal/assets"
	"github.com/databonnd/site/internal/types"
)

const (
	cardBaseDelay = 200 * time.Millisecond
	cardStagger   = 200 * time.Millisecond
)

// CardDelay is the entrance delay of the card at position index.
func CardDelay(index int) time.Duration {
	return cardBaseDelay + time.Duration(index)*cardStagger
}

// CompanyCard renders one company entry. Cards reveal in a staggered
// cascade keyed on index.
func CompanyCard(c types.Company, index int) g.Node {
	delay := animation.Seconds(CardDelay(index))

	logo := c.Logo
	if logo == "" {
		logo = assets.PlaceholderPath
	}

	bodyClass := "card-body"
	if !c.ShowDetails {
		bodyClass += " tall"
	}

	return h.Div(
		h.Class("card fade-up"),
		h.Style("--delay: "+delay),
		h.Data("index", strconv.Itoa(index)),
		h.Data("delay", delay),
		h.Div(
			h.Class(bodyClass),
			h.Div(
				h.Class("logo"),
				h.Img(
					h.Src(logo),
					h.Alt(c.Name),
					g.If(c.ZoomLogo, h.Class("scale-125")),
				),
			),
			g.If(c.ShowDetails, g.Group{
				h.H3(g.Text(c.Name)),
				h.P(g.Text(c.Description)),
			}),
		),
		g.If(c.LinksOut(), h.Div(
			h.Class("website"),
			h.A(
				h.Href(c.WebsiteURL),
				h.Target("_blank"),
				h.Rel("noopener noreferrer"),
				g.Text("Visit Website →"),
			),
		)),
	)
}
