package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = []string{
	"dashboard.html",
	"accounts.html",
	"account_detail.html",
	"account_form.html",
	"error.html",
}

// Renderer executes the embedded page templates. Each page is parsed
// together with the shared layout at startup.
type Renderer struct {
	templates map[string]*template.Template
	logger    *slog.Logger
}

// NewRenderer parses every embedded template. A parse failure is fatal
// to startup rather than deferred to request time.
func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	funcs := template.FuncMap{
		"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(funcs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = t
	}
	return &Renderer{templates: templates, logger: logger}, nil
}

// Render writes the page with the given status. The template executes
// into a buffer first so a rendering fault still produces a clean 500
// instead of a half-written body.
func (rn *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	t, ok := rn.templates[page]
	if !ok {
		rn.logger.Error("unknown template", "page", page)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		rn.logger.Error("template render failed", "page", page, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

type errorData struct {
	Title   string
	Notices []Notice
	Code    int
	Message string
}

// Error renders the generic error page.
func (rn *Renderer) Error(w http.ResponseWriter, code int, message string) {
	rn.Render(w, code, "error.html", errorData{
		Title:   fmt.Sprintf("Error %d", code),
		Code:    code,
		Message: message,
	})
}
