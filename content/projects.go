package content

import (
	"errors"

	"go.uber.org/zap"

	"github.com/0xb0b1/portfolio/i18n"
	"github.com/0xb0b1/portfolio/models"
)

// StaticParam is one project detail page a static build has to emit.
type StaticParam struct {
	Lang i18n.Lang
	ID   string
}

// ProjectService answers the project queries used by pages.
type ProjectService struct {
	repo     *Repository
	registry *i18n.Registry
	log      *zap.SugaredLogger
}

// NewProjectService wraps repo.
func NewProjectService(repo *Repository, registry *i18n.Registry, log *zap.SugaredLogger) *ProjectService {
	return &ProjectService{repo: repo, registry: registry, log: log}
}

// AllProjects returns the catalog for lang, or an empty list on failure.
func (s *ProjectService) AllProjects(lang i18n.Lang) []models.Project {
	projects, err := s.repo.LoadProjects(lang)
	if err != nil {
		if errors.Is(err, ErrContentMissing) {
			s.log.Warnf("No projects for %s: %v", lang, err)
		} else {
			s.log.Errorf("Error fetching projects for %s: %v", lang, err)
		}
		return []models.Project{}
	}
	return projects
}

// ProjectByID looks up a single project.
func (s *ProjectService) ProjectByID(id string, lang i18n.Lang) (models.Project, bool) {
	return s.repo.LoadProjectByID(id, lang)
}

// FeaturedProjects returns at most limit featured projects in catalog order.
func (s *ProjectService) FeaturedProjects(lang i18n.Lang, limit int) []models.Project {
	featured := []models.Project{}
	if limit <= 0 {
		return featured
	}

	for _, p := range s.AllProjects(lang) {
		if !p.Featured {
			continue
		}
		featured = append(featured, p)
		if len(featured) == limit {
			break
		}
	}
	return featured
}

// StaticParams lists every (lang, id) pair across all supported languages.
func (s *ProjectService) StaticParams() []StaticParam {
	var params []StaticParam
	seen := make(map[StaticParam]struct{})

	for _, lang := range s.registry.Langs() {
		for _, p := range s.AllProjects(lang) {
			param := StaticParam{Lang: lang, ID: p.ID}
			if !models.ValidProjectID(p.ID) {
				s.log.Warnf("Skipping project %q with invalid id %q (%s)", p.Name, p.ID, lang)
				continue
			}
			if _, dup := seen[param]; dup {
				continue
			}
			seen[param] = struct{}{}
			params = append(params, param)
		}
	}
	return params
}
