// Package pages builds the components for every page of the site. The HTTP
// handlers and the static exporter both render through it, so a page looks
// the same whether it is served or exported.
package pages

import (
	"errors"
	"io/fs"
	"time"

	"go.uber.org/zap"

	"github.com/0xb0b1/portfolio/config"
	"github.com/0xb0b1/portfolio/content"
	"github.com/0xb0b1/portfolio/i18n"
	"github.com/0xb0b1/portfolio/models"
	"github.com/0xb0b1/portfolio/routes"
	"github.com/0xb0b1/portfolio/templates"
)

// Site carries the shared, read-only dependencies of the page builders.
type Site struct {
	Registry        *i18n.Registry
	Content         *content.Repository
	ProjectService  *content.ProjectService
	Markdown        *content.Renderer
	Paths           *routes.Builder
	Meta            config.Site
	MessagesDir     string
	ProjectsPerPage int
	FeaturedLimit   int
	Log             *zap.SugaredLogger
	Now             func() time.Time
}

// New wires a Site from cfg. The paths follow cfg's deploy target.
func New(cfg *config.Config, log *zap.SugaredLogger) *Site {
	registry := i18n.DefaultRegistry()
	repo := content.NewRepository(cfg.ContentDir, registry, log)
	return &Site{
		Registry:        registry,
		Content:         repo,
		ProjectService:  content.NewProjectService(repo, registry, log),
		Markdown:        content.NewRenderer(cfg.CodeStyle),
		Paths:           routes.NewBuilder(registry.DefaultLang(), cfg.Static()),
		Meta:            cfg.Site,
		MessagesDir:     cfg.MessagesDir,
		ProjectsPerPage: cfg.ProjectsPerPage,
		FeaturedLimit:   cfg.FeaturedLimit,
		Log:             log,
	}
}

// Messages loads the translation messages for lang. Missing or broken
// files degrade to empty messages so every label uses its fallback.
func (s *Site) Messages(lang i18n.Lang) i18n.Messages {
	msgs, err := i18n.LoadMessages(s.MessagesDir, lang)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.Log.Warnf("Messages not found for %s", lang)
		} else {
			s.Log.Errorf("Error loading messages for %s: %v", lang, err)
		}
	}
	return msgs
}

func (s *Site) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// current identifies the page being rendered for the nav and the language
// switcher.
type current struct {
	route     routes.Route
	projectID string
}

func (c current) href(paths *routes.Builder, lang i18n.Lang) (string, error) {
	if c.route == routes.ProjectDetail {
		return paths.ProjectHref(lang, c.projectID)
	}
	return paths.Href(lang, c.route)
}

func ogLocale(lang i18n.Lang) string {
	switch lang {
	case i18n.AR:
		return "ar_SA"
	case i18n.FR:
		return "fr_FR"
	default:
		return "en_US"
	}
}

func (s *Site) layout(lang i18n.Lang, cur current, title, description string, msgs i18n.Messages) (templates.Layout, error) {
	if _, err := s.Registry.Info(string(lang)); err != nil {
		return templates.Layout{}, err
	}

	fullTitle := s.Meta.Title
	if title != "" {
		fullTitle = title + " - " + s.Meta.Name
	}
	if description == "" {
		description = s.Meta.Description
	}

	l := templates.Layout{
		Title:       fullTitle,
		Description: description,
		Lang:        string(lang),
		Dir:         s.Registry.Direction(string(lang)),
		OGLocale:    ogLocale(lang),
		SiteName:    s.Meta.Name,
		SiteURL:     s.Meta.URL,
		Email:       s.Meta.Email,
		Msgs:        msgs,
		Year:        s.now().Year(),
	}
	var err error
	if l.HomeHref, err = s.Paths.Href(lang, routes.Home); err != nil {
		return templates.Layout{}, err
	}

	nav := msgs.Section("nav")
	labels := map[routes.Route]string{
		routes.Home:     nav.T("home", "Home"),
		routes.About:    nav.T("about", "About"),
		routes.Projects: nav.T("projects", "Projects"),
		routes.Contact:  nav.T("contact", "Contact"),
	}
	active := cur.route
	if active == routes.ProjectDetail {
		active = routes.Projects
	}
	for _, route := range routes.Pages {
		href, err := s.Paths.Href(lang, route)
		if err != nil {
			return templates.Layout{}, err
		}
		l.Nav = append(l.Nav, templates.NavLink{Href: href, Label: labels[route], Active: route == active})
	}

	for _, other := range s.Registry.Langs() {
		href, err := cur.href(s.Paths, other)
		if err != nil {
			return templates.Layout{}, err
		}
		otherInfo, err := s.Registry.Info(string(other))
		if err != nil {
			return templates.Layout{}, err
		}
		l.Languages = append(l.Languages, templates.LanguageLink{
			Href:   href,
			Code:   string(other),
			Name:   otherInfo.Name,
			Flag:   otherInfo.Flag,
			Active: other == lang,
		})
	}

	for _, link := range s.Meta.Social {
		l.Social = append(l.Social, templates.SocialLink{Name: link.Name, Href: link.Href, Icon: link.Icon})
	}

	return l, nil
}

func (s *Site) cards(lang i18n.Lang, projects []models.Project, msgs i18n.Messages) ([]templates.ProjectCard, error) {
	cards := make([]templates.ProjectCard, 0, len(projects))
	for _, p := range projects {
		if !models.ValidProjectID(p.ID) {
			s.Log.Warnf("Skipping project %q with invalid id %q (%s)", p.Name, p.ID, lang)
			continue
		}
		href, err := s.Paths.ProjectHref(lang, p.ID)
		if err != nil {
			return nil, err
		}

		tags := p.Tech
		more := 0
		if len(tags) > 3 {
			more = len(tags) - 3
			tags = tags[:3]
		}
		cards = append(cards, templates.ProjectCard{Project: p, Href: href, Tags: tags, More: more, Msgs: msgs})
	}
	return cards, nil
}
