package server

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/jrsteele09/go-job-tracker/jobs"
	"github.com/rs/zerolog/hlog"
)

//go:embed templates/*
var templateFiles embed.FS

const layoutTemplate = "layout.html"

var templateFuncs = template.FuncMap{
	"deref": jobs.Deref,
}

func TemplateFilesFS() fs.FS {
	subFS, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic("Failed to create templates sub filesystem: " + err.Error())
	}
	return subFS
}

// ParseTemplate parses a page together with the shared layout from the embedded filesystem
func ParseTemplate(name string) (*template.Template, error) {
	return template.New(name).Funcs(templateFuncs).ParseFS(TemplateFilesFS(), layoutTemplate, name)
}

func mustParseTemplate(name string) *template.Template {
	tmpl, err := ParseTemplate(name)
	if err != nil {
		panic("Failed to parse " + name + " template: " + err.Error())
	}
	return tmpl
}

// PageData is the model shared by every rendered page
type PageData struct {
	AppName  string
	Title    string
	Username string
	Error    string
	Form     map[string]string
	Data     any
}

func (s *Server) pageData(title string) PageData {
	return PageData{AppName: s.config.GetAppName(), Title: title, Form: map[string]string{}}
}

func renderPage(w http.ResponseWriter, r *http.Request, tmpl *template.Template, status int, data PageData) {
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, layoutTemplate, data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("template", tmpl.Name()).Msg("failed to render template")
	}
}
