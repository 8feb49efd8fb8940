package pages

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/0xb0b1/portfolio/content"
	"github.com/0xb0b1/portfolio/i18n"
	"github.com/0xb0b1/portfolio/models"
	"github.com/0xb0b1/portfolio/routes"
	"github.com/0xb0b1/portfolio/templates"
)

// document loads slug for lang, substituting an untitled empty document
// when the file does not exist.
func (s *Site) document(slug string, lang i18n.Lang, defaultTitle string) (models.Document, error) {
	doc, err := s.Content.LoadDocument(slug, lang)
	if err != nil {
		if !errors.Is(err, content.ErrContentNotFound) {
			return models.Document{}, err
		}
		s.Log.Warnf("Using default %s document for %s: %v", slug, lang, err)
		doc = models.Document{
			Slug:        slug,
			Frontmatter: map[string]any{"title": defaultTitle},
		}
	}
	return doc, nil
}

// Home renders the landing page: home.md and the featured projects.
func (s *Site) Home(lang i18n.Lang) (templ.Component, error) {
	msgs := s.Messages(lang)

	doc, err := s.document("home", lang, msgs.T("home.title", s.Meta.Name))
	if err != nil {
		return nil, err
	}
	intro, err := s.Markdown.Render(doc.Body)
	if err != nil {
		return nil, err
	}

	featured, err := s.cards(lang, s.ProjectService.FeaturedProjects(lang, s.FeaturedLimit), msgs)
	if err != nil {
		return nil, err
	}

	view := templates.HomeView{
		Title:    doc.Title(),
		Intro:    intro,
		Featured: featured,
		Msgs:     msgs,
	}
	if view.ProjectsHref, err = s.Paths.Href(lang, routes.Projects); err != nil {
		return nil, err
	}
	if view.ContactHref, err = s.Paths.Href(lang, routes.Contact); err != nil {
		return nil, err
	}

	layout, err := s.layout(lang, current{route: routes.Home}, "", msgs.T("home.description", ""), msgs)
	if err != nil {
		return nil, err
	}
	return templates.Base(layout, templates.Home(view)), nil
}

// About renders about.md.
func (s *Site) About(lang i18n.Lang) (templ.Component, error) {
	msgs := s.Messages(lang)

	doc, err := s.document("about", lang, msgs.T("about.title", "About"))
	if err != nil {
		return nil, err
	}
	body, err := s.Markdown.Render(doc.Body)
	if err != nil {
		return nil, err
	}

	view := templates.AboutView{
		Title:       doc.Title(),
		Description: doc.Description(),
		Skills:      models.GetSliceMeta(doc.Frontmatter, "skills"),
		Body:        body,
	}

	layout, err := s.layout(lang, current{route: routes.About}, msgs.T("about.title", doc.Title()), msgs.T("about.description", doc.Description()), msgs)
	if err != nil {
		return nil, err
	}
	return templates.Base(layout, templates.About(view)), nil
}

// ProjectsQuery is the listing state taken from the query string.
type ProjectsQuery struct {
	Tech string
	Page int
}

// Projects renders the project list filtered by q.Tech. Pagination only
// applies when serving dynamically.
func (s *Site) Projects(lang i18n.Lang, q ProjectsQuery) (templ.Component, error) {
	msgs := s.Messages(lang)
	all := s.ProjectService.AllProjects(lang)

	base, err := s.Paths.Href(lang, routes.Projects)
	if err != nil {
		return nil, err
	}

	view := templates.ProjectsView{
		Selected: q.Tech,
		AllHref:  base,
		Msgs:     msgs,
	}
	counts := models.CountTechs(all)
	for _, tech := range models.UniqueTechs(all) {
		view.Techs = append(view.Techs, templates.TechLink{
			Name:   tech,
			Href:   listHref(base, tech, 0),
			Count:  counts[tech],
			Active: tech == q.Tech,
		})
	}

	filtered := models.FilterByTech(all, q.Tech)
	if !s.Paths.Static() && s.ProjectsPerPage > 0 {
		var p models.Pagination
		filtered, p = models.PaginateProjects(filtered, q.Page, s.ProjectsPerPage)
		view.Pagination = &p
		view.PrevHref = listHref(base, q.Tech, p.CurrentPage-1)
		view.NextHref = listHref(base, q.Tech, p.CurrentPage+1)
	}

	if view.Cards, err = s.cards(lang, filtered, msgs); err != nil {
		return nil, err
	}

	layout, err := s.layout(lang, current{route: routes.Projects}, msgs.T("projects.title", "Projects"), msgs.T("projects.description", ""), msgs)
	if err != nil {
		return nil, err
	}
	return templates.Base(layout, templates.Projects(view)), nil
}

func listHref(base, tech string, page int) string {
	v := url.Values{}
	if tech != "" {
		v.Set("tech", tech)
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	if len(v) == 0 {
		return base
	}
	return base + "?" + v.Encode()
}

// Project renders one project. The bool is false when id is not in the
// catalog for lang.
func (s *Site) Project(lang i18n.Lang, id string) (templ.Component, bool, error) {
	if !models.ValidProjectID(id) {
		return nil, false, nil
	}
	project, ok := s.ProjectService.ProjectByID(id, lang)
	if !ok {
		return nil, false, nil
	}
	msgs := s.Messages(lang)

	body, err := s.Markdown.Render(project.LongDescription)
	if err != nil {
		return nil, true, err
	}

	view := templates.ProjectView{
		Project: project,
		Body:    body,
		Msgs:    msgs,
	}
	if view.BackHref, err = s.Paths.Href(lang, routes.Projects); err != nil {
		return nil, true, err
	}

	layout, err := s.layout(lang, current{route: routes.ProjectDetail, projectID: id}, project.Name, project.Description, msgs)
	if err != nil {
		return nil, true, err
	}
	return templates.Base(layout, templates.Project(view)), true, nil
}

// ContactState is the outcome of a form post shown back to the visitor.
type ContactState struct {
	Form    models.ContactSubmission
	Success bool
	Err     error
}

// Contact renders the contact page. In a static export the form falls back
// to mailto since there is no endpoint to post to.
func (s *Site) Contact(lang i18n.Lang, state ContactState) (templ.Component, error) {
	msgs := s.Messages(lang)

	view := templates.ContactView{
		Email:   s.Meta.Email,
		Form:    state.Form,
		Success: state.Success,
		Msgs:    msgs,
	}
	for _, link := range s.Meta.Social {
		view.Social = append(view.Social, templates.SocialLink{Name: link.Name, Href: link.Href, Icon: link.Icon})
	}
	if state.Err != nil {
		view.Error = ContactErrorMessage(msgs, state.Err)
	}

	if s.Paths.Static() {
		view.Action = "mailto:" + s.Meta.Email
		view.Mailto = true
	} else {
		action, err := s.Paths.Href(lang, routes.Contact)
		if err != nil {
			return nil, err
		}
		view.Action = action
	}

	layout, err := s.layout(lang, current{route: routes.Contact}, msgs.T("contact.title", "Contact"), msgs.T("contact.description", ""), msgs)
	if err != nil {
		return nil, err
	}
	return templates.Base(layout, templates.Contact(view)), nil
}

// ContactErrorMessage localizes a contact validation error.
func ContactErrorMessage(msgs i18n.Messages, err error) string {
	switch {
	case errors.Is(err, models.ErrMissingFields):
		return msgs.T("contact.errors.missing", "Missing required fields")
	case errors.Is(err, models.ErrInvalidEmail):
		return msgs.T("contact.errors.email", "Invalid email address")
	case errors.Is(err, models.ErrMessageTooShort):
		return msgs.T("contact.errors.short", "Message too short (minimum 10 characters)")
	default:
		return msgs.T("contact.errors.generic", "Something went wrong")
	}
}

// NotFound renders the not-found page in lang.
func (s *Site) NotFound(lang i18n.Lang) (templ.Component, error) {
	msgs := s.Messages(lang)

	view := templates.NotFoundView{Msgs: msgs}
	var err error
	if view.HomeHref, err = s.Paths.Href(lang, routes.Home); err != nil {
		return nil, err
	}

	layout, err := s.layout(lang, current{route: routes.Home}, msgs.T("notFound.title", "Page Not Found"), "", msgs)
	if err != nil {
		return nil, err
	}
	return templates.Base(layout, templates.NotFound(view)), nil
}
