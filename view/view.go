// Package view renders the HTML pages.
//
// Templates and static assets are embedded. Each page is parsed together with
// layout.html and the shared partials, cached, and cloned per request so the
// request-scoped funcs (language, translations) can be bound.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strconv"
	"sync"
	"time"

	"github.com/benbjohnson/hashfs"

	"github.com/diewo77/go-duerp/i18n"
	"github.com/diewo77/go-duerp/internal/models"
	"github.com/diewo77/go-duerp/internal/theme"
)

//go:embed templates
var embeddedTemplates embed.FS

//go:embed static
var embeddedStatic embed.FS

var partials = []string{
	"partials/header.html",
	"partials/page-header.html",
	"partials/errors-alert.html",
	"partials/stat-card.html",
	"partials/field-text.html",
	"partials/field-select.html",
	"partials/risk-badge.html",
	"partials/status-chip.html",
	"partials/unit-modal.html",
	"partials/hazard-modal.html",
	"partials/measure-modal.html",
}

// Renderer executes page templates with the application theme.
type Renderer struct {
	theme     theme.Theme
	templates fs.FS
	assets    *hashfs.FS
	noCache   bool
	lang      func(*http.Request) string

	mu    sync.RWMutex
	cache map[string]*template.Template
}

// Option customizes a Renderer.
type Option func(*Renderer)

// WithTemplates replaces the embedded templates, e.g. with os.DirFS in development.
func WithTemplates(fsys fs.FS) Option {
	return func(v *Renderer) { v.templates = fsys }
}

// WithoutCache re-parses templates on every render.
func WithoutCache() Option {
	return func(v *Renderer) { v.noCache = true }
}

// WithLangResolver sets how the request language is obtained.
func WithLangResolver(f func(*http.Request) string) Option {
	return func(v *Renderer) {
		if f != nil {
			v.lang = f
		}
	}
}

// New returns a Renderer bound to th.
func New(th theme.Theme, opts ...Option) *Renderer {
	tpl, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}
	static, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		panic(err)
	}
	v := &Renderer{
		theme:     th,
		templates: tpl,
		assets:    hashfs.NewFS(static),
		lang:      func(*http.Request) string { return i18n.Default },
		cache:     map[string]*template.Template{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Theme returns the theme the renderer was built with.
func (v *Renderer) Theme() theme.Theme { return v.theme }

// Assets serves the embedded static files under their hashed names.
func (v *Renderer) Assets() http.Handler {
	return http.StripPrefix("/static/", hashfs.FileServer(v.assets))
}

// AssetPath returns the cache-busted URL of a static file.
func (v *Renderer) AssetPath(name string) string {
	return "/static/" + v.assets.HashName(name)
}

// Funcs returns the template funcs bound to r.
func (v *Renderer) Funcs(r *http.Request) template.FuncMap {
	lang := i18n.Default
	if r != nil {
		lang = v.lang(r)
	}
	th := v.theme
	return template.FuncMap{
		"t":    func(code string) string { return i18n.T(lang, code) },
		"tf":   func(code string, args ...any) string { return fmt.Sprintf(i18n.T(lang, code), args...) },
		"lang": func() string { return lang },
		"year": func() int { return time.Now().Year() },
		"add":  func(a, b int) int { return a + b },
		"mul":  func(a, b int) int { return a * b },
		"seq": func(from, to int) []int {
			var out []int
			for i := from; i <= to; i++ {
				out = append(out, i)
			}
			return out
		},
		"asset":           v.AssetPath,
		"themeCSS":        func() template.CSS { return template.CSS(th.CSS()) },
		"riskColor":       th.RiskColor,
		"riskClass":       theme.RiskClass,
		"statusClass":     theme.StatusClass,
		"levels":          func() []string { return models.Levels },
		"date":            models.FormatDate,
		"levelOf":         models.LevelFor,
		"frequencies":     func() []string { return models.ExposureFrequencies },
		"efficiencies":    func() []string { return models.Efficiencies },
		"measureStatuses": func() []string { return models.MeasureStatuses },
		"optInt": func(p *int) string {
			if p == nil {
				return ""
			}
			return strconv.Itoa(*p)
		},
		"optFloat": func(p *float64) string {
			if p == nil {
				return ""
			}
			return strconv.FormatFloat(*p, 'f', -1, 64)
		},
		"percent": func(n, total int) int {
			if total <= 0 {
				return 0
			}
			return n * 100 / total
		},
		// dict creates a map from key-value pairs for passing to sub-templates.
		// Usage: {{ template "partial" (dict "Key1" val1 "Key2" val2) }}
		"dict": func(values ...any) map[string]any {
			if len(values)%2 != 0 {
				return nil
			}
			m := make(map[string]any, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					continue
				}
				m[key] = values[i+1]
			}
			return m
		},
	}
}

func (v *Renderer) parse(name string) (*template.Template, error) {
	if !v.noCache {
		v.mu.RLock()
		t, ok := v.cache[name]
		v.mu.RUnlock()
		if ok {
			return t, nil
		}
	}
	files := append([]string{"layout.html", name}, partials...)
	t, err := template.New(path.Base(name)).Funcs(v.Funcs(nil)).ParseFS(v.templates, files...)
	if err != nil {
		return nil, fmt.Errorf("view: parse %s: %w", name, err)
	}
	if !v.noCache {
		v.mu.Lock()
		v.cache[name] = t
		v.mu.Unlock()
	}
	return t, nil
}

// Pages lists the page templates, i.e. every template outside partials/
// except the layout.
func (v *Renderer) Pages() ([]string, error) {
	var pages []string
	err := fs.WalkDir(v.templates, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p == "partials" {
				return fs.SkipDir
			}
			return nil
		}
		if path.Ext(p) == ".html" && p != "layout.html" {
			pages = append(pages, p)
		}
		return nil
	})
	return pages, err
}

// Check parses every page and returns the first error.
func (v *Renderer) Check() error {
	pages, err := v.Pages()
	if err != nil {
		return err
	}
	for _, p := range pages {
		if _, err := v.parse(p); err != nil {
			return err
		}
	}
	return nil
}

// Render executes the page name (e.g. "duerp/list.html") inside the layout.
// Output is buffered so a template error never produces a half-written page.
func (v *Renderer) Render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) error {
	return v.RenderStatus(w, r, http.StatusOK, name, data)
}

// RenderStatus is Render with an explicit status code.
func (v *Renderer) RenderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) error {
	base, err := v.parse(name)
	if err != nil {
		return err
	}
	t, err := base.Clone()
	if err != nil {
		return err
	}
	t.Funcs(v.Funcs(r))

	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Path"]; !ok && r != nil {
		data["Path"] = r.URL.Path
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("view: execute %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}
