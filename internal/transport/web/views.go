package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageNames = []string{"index", "edit", "login", "register", "error"}

// views holds one parsed template set per page, each combined with the layout.
type views struct {
	pages map[string]*template.Template
}

func parseViews() (*views, error) {
	v := &views{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("web.parseViews %s: %w", name, err)
		}
		v.pages[name] = t
	}
	return v, nil
}

// render executes the page into memory first so a template failure turns
// into a clean 500 instead of a half-written page.
func (v *views) render(w http.ResponseWriter, status int, name string, data pageData) error {
	t, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("web.render: unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("web.render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// pageData is the single view model shared by all pages.
type pageData struct {
	Title   string
	User    string
	Status  int
	Message string
	Notes   []noteView
	Note    *noteView
	Form    formView
	Errors  map[string]string
}

type noteView struct {
	ID            int64
	Content       string
	HTML          template.HTML
	Summary       string
	HasSummary    bool
	SummaryFailed bool
}

type formView struct {
	Username string
	Content  string
	Next     string
}
