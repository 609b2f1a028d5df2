// Package render produces HTML response bodies from embedded templates.
//
// Handlers supply only a view name, an optional inline error message, and
// the view data; markup never leaves this package.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-micro-blog/internal/logger"
	"github.com/MKhiriev/go-micro-blog/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pages lists every renderable view. Each page template redefines the
// "content" block of base.html.
var pages = []string{"register", "login", "index", "create", "update"}

// Data carries everything a view can show. Fields irrelevant to a given
// view are simply left zero.
type Data struct {
	// User is the resolved request identity, nil for anonymous visitors.
	User *models.User

	// Error is the inline message shown above the form, empty when absent.
	Error string

	// Posts feeds the index view.
	Posts []models.Post

	// Post feeds the update view.
	Post models.Post
}

// Renderer holds the parsed template set for every view.
type Renderer struct {
	views  map[string]*template.Template
	logger *logger.Logger
}

// NewRenderer parses all embedded templates. Each view is parsed together
// with the shared base layout so pages can redefine its blocks.
func NewRenderer(logger *logger.Logger) (*Renderer, error) {
	views := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.ParseFS(templatesFS, "templates/base.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("error parsing template for view %q: %w", page, err)
		}
		views[page] = t
	}

	logger.Debug().Int("views", len(views)).Msg("template renderer created")
	return &Renderer{views: views, logger: logger}, nil
}

// Render writes the named view to w with the given HTTP status.
//
// The template executes into a buffer first so a mid-render failure never
// produces a half-written response body.
func (r *Renderer) Render(w http.ResponseWriter, status int, view string, data Data) error {
	t, ok := r.views[view]
	if !ok {
		return fmt.Errorf("unknown view %q", view)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("error executing view %q: %w", view, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
