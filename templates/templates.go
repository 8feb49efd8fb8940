// Package templates holds the page components. Each page is a
// templ.Component over an embedded html/template, and Base wraps a page in
// the site layout.
package templates

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/0xb0b1/portfolio/i18n"
)

//go:embed html/*.html
var files embed.FS

var funcs = template.FuncMap{
	"t": func(m i18n.Messages, key, fallback string) string {
		return m.T(key, fallback)
	},
}

var pages = template.Must(template.New("").Funcs(funcs).ParseFS(files, "html/*.html"))

// render returns a component executing the named template with data.
func render(name string, data any) templ.Component {
	return templ.FromGoHTML(pages.Lookup(name), data)
}

type baseData struct {
	Layout
	Body template.HTML
}

// Base renders body inside the site layout.
func Base(l Layout, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		html, err := templ.ToGoHTML(ctx, body)
		if err != nil {
			return err
		}
		return render("base", baseData{Layout: l, Body: html}).Render(ctx, w)
	})
}

func Home(v HomeView) templ.Component         { return render("home", v) }
func About(v AboutView) templ.Component       { return render("about", v) }
func Projects(v ProjectsView) templ.Component { return render("projects", v) }
func Project(v ProjectView) templ.Component   { return render("project", v) }
func Contact(v ContactView) templ.Component   { return render("contact", v) }
func NotFound(v NotFoundView) templ.Component { return render("notfound", v) }
