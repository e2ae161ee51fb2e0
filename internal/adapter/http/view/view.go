package view

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/Temutjin2k/wtl-cabs/pkg/logger"
	wrap "github.com/Temutjin2k/wtl-cabs/pkg/logger/wrapper"
)

//go:embed templates/*.html
var files embed.FS

// Pages
const (
	PageLanding = "landing"
	PageSearch  = "search"
	PageNotice  = "notice"
	PageError   = "error"
)

var pages = []string{PageLanding, PageSearch, PageNotice, PageError}

// FallbackMessage is shown whenever a page cannot be rendered.
const FallbackMessage = "There was an error loading this page. Please try again later."

const fallbackHTML = `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>WTL</title></head>
<body><main class="fallback"><p>` + FallbackMessage + `</p><a href="/">Return to Home</a></main></body></html>
`

type Renderer struct {
	pages map[string]*template.Template
	l     logger.Logger
}

// New parses every page together with the shared layout.
func New(l logger.Logger) (*Renderer, error) {
	r := &Renderer{
		pages: make(map[string]*template.Template, len(pages)),
		l:     l,
	}

	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(files, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", page, err)
		}
		r.pages[page] = t
	}

	return r, nil
}

// Render executes page into a buffer first, so a failing template never leaves a
// half written page: the visitor gets the fallback page instead.
func (r *Renderer) Render(ctx context.Context, w http.ResponseWriter, status int, page string, data any) {
	ctx = wrap.WithAction(ctx, "render_page")

	t, ok := r.pages[page]
	if !ok {
		r.l.Error(ctx, "unknown page", fmt.Errorf("page %q is not registered", page))
		Fallback(w)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		r.l.Error(ctx, "failed to render page", err, "page", page)
		Fallback(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.l.Debug(ctx, "client went away while writing page", "page", page, "error", err.Error())
	}
}

// Fallback writes the static error page with a 500 status.
func Fallback(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(fallbackHTML))
}
