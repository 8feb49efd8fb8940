package templates

import (
	"html/template"

	"github.com/0xb0b1/portfolio/i18n"
	"github.com/0xb0b1/portfolio/models"
)

type NavLink struct {
	Href   string
	Label  string
	Active bool
}

type LanguageLink struct {
	Href   string
	Code   string
	Name   string
	Flag   string
	Active bool
}

type SocialLink struct {
	Name string
	Href string
	Icon string
}

// Layout is everything the surrounding page chrome needs.
type Layout struct {
	Title       string
	Description string
	Lang        string
	Dir         string
	OGLocale    string
	SiteName    string
	SiteURL     string
	Email       string
	HomeHref    string
	Nav         []NavLink
	Languages   []LanguageLink
	Social      []SocialLink
	Msgs        i18n.Messages
	Year        int
}

// ProjectCard is a project as shown in grids.
type ProjectCard struct {
	Project models.Project
	Href    string
	Tags    []string
	More    int
	Msgs    i18n.Messages
}

type HomeView struct {
	Title        string
	Intro        template.HTML
	Featured     []ProjectCard
	ProjectsHref string
	ContactHref  string
	Msgs         i18n.Messages
}

type AboutView struct {
	Title       string
	Description string
	Skills      []string
	Body        template.HTML
}

type TechLink struct {
	Name   string
	Href   string
	Count  int
	Active bool
}

type ProjectsView struct {
	Selected   string
	AllHref    string
	Techs      []TechLink
	Cards      []ProjectCard
	Pagination *models.Pagination
	PrevHref   string
	NextHref   string
	Msgs       i18n.Messages
}

type ProjectView struct {
	Project  models.Project
	Body     template.HTML
	BackHref string
	Msgs     i18n.Messages
}

type ContactView struct {
	Action  string
	Mailto  bool
	Email   string
	Social  []SocialLink
	Form    models.ContactSubmission
	Success bool
	Error   string
	Msgs    i18n.Messages
}

type NotFoundView struct {
	HomeHref string
	Msgs     i18n.Messages
}
