package views

import (
	"embed"
	"html/template"

	"github.com/yeremiapane/cafe-finder/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"rating": utils.FormatRating,
	"stars":  utils.Stars,
}

// Templates parses the embedded page templates. Pages are addressed by file
// name, e.g. "home.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}
