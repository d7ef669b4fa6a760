package server

import (
	"bytes"
	"log"
	"net/http"
	"strconv"

	g "maragu.dev/gomponents"

	"github.com/databonnd/site/internal/animation"
	"github.com/databonnd/site/internal/assets"
	"github.com/databonnd/site/internal/rendering"
	"github.com/databonnd/site/internal/server/middleware"
	"github.com/databonnd/site/internal/viewport"
)

// handleLanding renders the landing page for the request's viewport mode.
func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	bg := rendering.NewBackground(middleware.GetMode(r), s.source())
	s.htmlResponse(w, rendering.LandingPage(s.site, bg))
}

// handleCompanies renders the companies page.
func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	bg := rendering.NewBackground(middleware.GetMode(r), s.source())
	s.htmlResponse(w, rendering.CompaniesPage(s.site, bg, s.companies))
}

// handleBackground renders a standalone animated canvas.
//
// Query parameters: mode (mobile|desktop, defaults to the viewport hint)
// and seed (integer, defaults to the server seed).
func (s *Server) handleBackground(w http.ResponseWriter, r *http.Request) {
	mode := middleware.GetMode(r)
	if v := r.URL.Query().Get("mode"); v != "" {
		parsed, err := viewport.ParseMode(v)
		if err != nil {
			s.errorResponse(w, &ErrInvalidMode{Value: v})
			return
		}
		mode = parsed
	}
	s.writeBackground(w, r, mode)
}

// handleModeBackground serves the canvas for a fixed mode, as exported
// under rendering.BackgroundPath. The seed query parameter still applies.
func (s *Server) handleModeBackground(mode viewport.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeBackground(w, r, mode)
	}
}

func (s *Server) writeBackground(w http.ResponseWriter, r *http.Request, mode viewport.Mode) {
	src := s.source()
	if v := r.URL.Query().Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			s.errorResponse(w, &ErrInvalidSeed{Value: v, Cause: err})
			return
		}
		src = animation.NewSource(seed)
	}

	var buf bytes.Buffer
	if err := rendering.WriteSVG(&buf, rendering.NewBackground(mode, src)); err != nil {
		log.Printf("Error rendering background: %v", err)
		s.errorResponse(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(buf.Bytes())
}

// handleImage serves an embedded image. Unknown names get the placeholder
// so a missing logo never breaks a page.
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	asset, found := assets.Image(name)
	if !found {
		log.Printf("[assets] unknown image %q, serving placeholder", name)
		w.Header().Set("Cache-Control", "no-cache")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=86400")
	}
	w.Header().Set("Content-Type", asset.ContentType)
	_, _ = w.Write(asset.Data)
}

// handleStatic serves the client script and stylesheet.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	asset, ok := assets.Static(r.PathValue("name"))
	if !ok {
		s.errorResponse(w, &ErrNotFound{Path: r.URL.Path})
		return
	}
	w.Header().Set("Content-Type", asset.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(asset.Data)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.sessions.Count(),
	})
}

// htmlResponse renders n fully before writing so a render failure can
// still produce an error status.
func (s *Server) htmlResponse(w http.ResponseWriter, n g.Node) {
	var buf bytes.Buffer
	if err := rendering.Write(&buf, n); err != nil {
		log.Printf("Error rendering page: %v", err)
		s.errorResponse(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
