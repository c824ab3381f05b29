package web

import (
	"embed"
	"html/template"

	"github.com/sirupsen/logrus"
)

//go:embed templates
var templateFiles embed.FS

// Templates is the compiled template set for the dashboard.
var Templates *template.Template

func init() {
	var err error

	Templates, err = template.New("").ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		logrus.WithError(err).Error("web: failed to parse templates")
		panic(err)
	}
}
