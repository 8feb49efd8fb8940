// Package routes maps logical page names to URL paths for a language.
//
// Dynamic mode (server rendering): the default language is unprefixed and
// other languages get a /{lang} prefix, without trailing slashes.
//
// Static mode (export): every language is prefixed and every path ends in a
// slash, except the default language home which is "/".
package routes

import (
	"errors"
	"fmt"

	"github.com/0xb0b1/portfolio/i18n"
	"github.com/0xb0b1/portfolio/models"
)

// Route is a logical page name.
type Route string

const (
	Home          Route = "home"
	About         Route = "about"
	Projects      Route = "projects"
	Contact       Route = "contact"
	ProjectDetail Route = "project-detail"
)

// ErrUnknownRoute is returned for a route outside the route table.
var ErrUnknownRoute = errors.New("unknown route")

// basePaths is the route table. ProjectDetail is built by ProjectHref.
var basePaths = map[Route]string{
	Home:          "",
	About:         "/about",
	Projects:      "/projects",
	Contact:       "/contact",
	ProjectDetail: "/projects",
}

// Pages lists the routes that exist once per language.
var Pages = []Route{Home, About, Projects, Contact}

// Builder produces hrefs. The mode is fixed for its lifetime.
type Builder struct {
	defaultLang i18n.Lang
	static      bool
}

// NewBuilder returns a builder for the given default language and mode.
func NewBuilder(defaultLang i18n.Lang, static bool) *Builder {
	return &Builder{defaultLang: defaultLang, static: static}
}

// Static reports whether the builder targets a static export.
func (b *Builder) Static() bool {
	return b.static
}

// Href returns the path of route in lang.
func (b *Builder) Href(lang i18n.Lang, route Route) (string, error) {
	base, ok := basePaths[route]
	if !ok || route == ProjectDetail {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}
	return b.build(lang, base), nil
}

// ProjectHref returns the detail path of project id in lang.
func (b *Builder) ProjectHref(lang i18n.Lang, id string) (string, error) {
	if !models.ValidProjectID(id) {
		return "", fmt.Errorf("%w: %s with id %q", ErrUnknownRoute, ProjectDetail, id)
	}
	return b.build(lang, basePaths[ProjectDetail]+"/"+id), nil
}

// MustHref is Href for route constants known to be valid.
func (b *Builder) MustHref(lang i18n.Lang, route Route) string {
	href, err := b.Href(lang, route)
	if err != nil {
		panic(err)
	}
	return href
}

func (b *Builder) build(lang i18n.Lang, base string) string {
	if b.static {
		if lang == b.defaultLang && base == "" {
			return "/"
		}
		return "/" + string(lang) + base + "/"
	}

	if lang == b.defaultLang {
		if base == "" {
			return "/"
		}
		return base
	}
	return "/" + string(lang) + base
}
