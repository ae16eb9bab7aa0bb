package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

const DashboardTemplate = "dashboard.html"

// Dashboard is the data rendered into the dashboard page.
type Dashboard struct {
	Title string
}

func Templates() *template.Template {
	return template.Must(template.ParseFS(templates, "templates/*.html"))
}

// Static returns the dashboard assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
