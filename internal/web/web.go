package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Template names
const (
	TemplateIndex    = "index.html"
	TemplateCallback = "callback.html"
)

// ErrMsgPageLoad is the plain-text body served when a page fails to render.
const ErrMsgPageLoad = "Error loading page"

// PageData holds the values substituted into the served pages.
type PageData struct {
	ClientID     string
	CallbackURI  string
	APIBaseURL   string
	AuthorizeURL string
	Scopes       []string
}

// Pages renders the HTML front end of the link flow.
type Pages struct {
	templates *template.Template
	data      PageData
	static    http.Handler
}

// NewPages parses the embedded templates.
func NewPages(data PageData) (*Pages, error) {
	tmpl, err := template.New("pages").Funcs(sprig.FuncMap()).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}

	return &Pages{
		templates: tmpl,
		data:      data,
		static:    http.StripPrefix("/static/", http.FileServer(http.FS(sub))),
	}, nil
}

// HandleIndex handles GET /
func (p *Pages) HandleIndex() http.HandlerFunc {
	return p.render(TemplateIndex)
}

// HandleCallback handles GET /oauth/osu/callback, the osu! authorize redirect target.
func (p *Pages) HandleCallback() http.HandlerFunc {
	return p.render(TemplateCallback)
}

// Static serves embedded assets under /static/.
func (p *Pages) Static() http.Handler {
	return p.static
}

func (p *Pages) render(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := p.templates.ExecuteTemplate(&buf, name, p.data); err != nil {
			slog.Error("Failed to render page", "template", name, "error", err)
			http.Error(w, ErrMsgPageLoad, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := buf.WriteTo(w); err != nil {
			slog.Error("Failed to write page", "template", name, "error", err)
		}
	}
}
