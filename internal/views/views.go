// Package views holds the embedded HTML templates and the fiber view engine.
package views

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

// Layout wraps every page.
const Layout = "layouts/base"

//go:embed templates
var files embed.FS

func NewEngine() *html.Engine {
	sub, err := fs.Sub(files, "templates")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("mediaURL", MediaURL)
	return engine
}

// MediaURL turns a stored relative upload path into a public URL.
func MediaURL(rel *string) string {
	if rel == nil || *rel == "" {
		return ""
	}
	return "/media/" + *rel
}
