package frontend

import (
	"embed"
	"io"
	"text/template"

	"github.com/labstack/echo/v4"
)

const viewsPattern = "views/*.html"

//go:embed views
var assetsFS embed.FS

// Template adapts html templates from the embedded views directory to
// echo's renderer interface.
type Template struct {
	templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}
