package web

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names.
const (
	pageDashboard   = "dashboard.html"
	pageParks       = "parks.html"
	pageParkUpsert  = "park_upsert.html"
	pageTrails      = "trails.html"
	pageTrailUpsert = "trail_upsert.html"
	pageError       = "error.html"
)

var pageNames = []string{
	pageDashboard,
	pageParks,
	pageParkUpsert,
	pageTrails,
	pageTrailUpsert,
	pageError,
}

var templateFuncs = template.FuncMap{
	"pictureURL": pictureURL,
	"date":       formatDate,
}

// Templates holds one parsed template set per page, each combined with the
// shared layout.
type Templates struct {
	pages map[string]*template.Template
}

// LoadTemplates parses the embedded page templates.
func LoadTemplates() (*Templates, error) {
	return loadTemplates(templateFS)
}

func loadTemplates(fsys fs.FS) (*Templates, error) {
	t := &Templates{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(fsys, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		t.pages[name] = tmpl
	}
	return t, nil
}

// Render executes the page into a buffer first so that a failing template
// never produces a half-written response.
func (t *Templates) Render(w http.ResponseWriter, status int, name string, data any) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// pictureURL renders picture bytes as an inline data URI.
func pictureURL(picture []byte) template.URL {
	if len(picture) == 0 {
		return ""
	}
	contentType := http.DetectContentType(picture)
	// #nosec G203 -- the content is base64 encoded and cannot break out of the attribute
	return template.URL("data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(picture))
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
