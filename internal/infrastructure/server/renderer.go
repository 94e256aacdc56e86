package server

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// TemplateRenderer implements echo.Renderer over html/template. Templates
// are parsed once at startup from the configured directory; each file
// defines the template it is named after.
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses every .html template in dir
func NewTemplateRenderer(dir string) (*TemplateRenderer, error) {
	templates, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates in %s: %w", dir, err)
	}

	return &TemplateRenderer{templates: templates}, nil
}

// Render renders a named template with the given data
func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
