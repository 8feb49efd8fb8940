// Package handlers serves the site over HTTP. Every page handler resolves
// its locale from the request context, builds the page through pages.Site
// and renders it.
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/0xb0b1/portfolio/i18n"
	"github.com/0xb0b1/portfolio/pages"
)

// Deps are shared by all handlers.
type Deps struct {
	Site *pages.Site
	Log  *zap.SugaredLogger
}

func (d *Deps) lang(r *http.Request) i18n.Lang {
	return i18n.FromContext(r.Context(), d.Site.Registry.DefaultLang())
}

// render buffers c so a failed render still produces a clean 500.
func (d *Deps) render(w http.ResponseWriter, r *http.Request, c templ.Component, status int) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		d.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		d.Log.Warnf("Error writing response for %s: %v", r.URL.Path, err)
	}
}

func (d *Deps) page(w http.ResponseWriter, r *http.Request, c templ.Component, err error) {
	if err != nil {
		d.serverError(w, r, err)
		return
	}
	d.render(w, r, c, http.StatusOK)
}

func (d *Deps) notFound(w http.ResponseWriter, r *http.Request, lang i18n.Lang) {
	c, err := d.Site.NotFound(lang)
	if err != nil {
		d.serverError(w, r, err)
		return
	}
	d.render(w, r, c, http.StatusNotFound)
}

func (d *Deps) serverError(w http.ResponseWriter, r *http.Request, err error) {
	d.Log.Errorf("Error rendering %s: %v", r.URL.Path, err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (d *Deps) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		d.Log.Errorf("Failed to write JSON response: %v", err)
	}
}

func (d *Deps) writeError(w http.ResponseWriter, status int, message string) {
	d.writeJSON(w, status, errorResponse{Error: message})
}
