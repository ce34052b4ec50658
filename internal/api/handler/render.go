package handler

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/feedbackhub/feedback-portal/internal/api/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer adapts html/template to echo.Renderer. Templates are embedded
// so the binary carries its own pages.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Render satisfies the echo.Renderer interface.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// page carries the fields every template needs: the nav identity and any
// one-shot flash messages queued by the previous request.
type page struct {
	Title    string
	Identity string
	Flashes  []string
}

// newPage consumes pending flashes, so build it once per rendered view.
func newPage(c echo.Context, title string) page {
	return page{
		Title:    title,
		Identity: middleware.Identity(c),
		Flashes:  middleware.Flashes(c),
	}
}
