package httpserver

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

func (srv HTTPServer) loadTemplates() error {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return err
	}
	srv.gin.SetHTMLTemplate(tmpl)
	return nil
}
