// Package content reads the locale-partitioned content tree:
//
//	{root}/{locale}/{slug}.md
//	{root}/{locale}/projects.json
//
// Filesystem and parse failures stop here and come back as empty results or
// typed errors, never as raw I/O errors.
package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"go.uber.org/zap"

	"github.com/0xb0b1/portfolio/i18n"
	"github.com/0xb0b1/portfolio/models"
)

const projectsFile = "projects.json"

var (
	// ErrContentNotFound means the document for a slug does not exist.
	ErrContentNotFound = errors.New("content not found")
	// ErrContentMissing means no usable project catalog was found. It is
	// returned alongside an empty catalog and is not fatal.
	ErrContentMissing = errors.New("content missing")
)

// Repository loads documents and project catalogs from disk on every call.
type Repository struct {
	root     string
	registry *i18n.Registry
	log      *zap.SugaredLogger
}

// NewRepository creates a repository rooted at root.
func NewRepository(root string, registry *i18n.Registry, log *zap.SugaredLogger) *Repository {
	return &Repository{root: root, registry: registry, log: log}
}

// LoadDocument reads {root}/{lang}/{slug}.md.
func (r *Repository) LoadDocument(slug string, lang i18n.Lang) (models.Document, error) {
	if !r.registry.IsSupported(string(lang)) {
		return models.Document{}, fmt.Errorf("load %q: %w: %q", slug, i18n.ErrUnknownLocale, lang)
	}
	if !validSegment(slug) {
		return models.Document{}, fmt.Errorf("%w: invalid slug %q", ErrContentNotFound, slug)
	}

	path := filepath.Join(r.root, string(lang), slug+".md")
	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.log.Errorf("Error reading %s: %v", path, err)
		}
		return models.Document{}, fmt.Errorf("%w: %s/%s.md", ErrContentNotFound, lang, slug)
	}

	return r.parseDocument(path, slug, raw), nil
}

func (r *Repository) parseDocument(path, slug string, raw []byte) models.Document {
	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		r.log.Warnf("Could not parse frontmatter for %s: %v. Treating as pure markdown.", path, err)
		body = raw
		meta = nil
	}
	if meta == nil {
		meta = make(map[string]any)
	}

	return models.Document{
		Frontmatter: meta,
		Body:        string(body),
		Slug:        slug,
	}
}

// LoadProjects returns the catalog for lang, falling back to the default
// language. When neither exists the result is an empty slice together with
// ErrContentMissing.
func (r *Repository) LoadProjects(lang i18n.Lang) ([]models.Project, error) {
	path, err := r.resolveCatalog(lang)
	if err != nil {
		return []models.Project{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return []models.Project{}, fmt.Errorf("%w: read %s: %v", ErrContentMissing, path, err)
	}

	var projects []models.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return []models.Project{}, fmt.Errorf("%w: parse %s: %v", ErrContentMissing, path, err)
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

// resolveCatalog tries the requested language, then the default one.
func (r *Repository) resolveCatalog(lang i18n.Lang) (string, error) {
	candidates := []i18n.Lang{r.registry.DefaultLang()}
	if r.registry.IsSupported(string(lang)) && lang != r.registry.DefaultLang() {
		candidates = []i18n.Lang{lang, r.registry.DefaultLang()}
	}

	for _, l := range candidates {
		path := filepath.Join(r.root, string(l), projectsFile)
		if fileExists(path) {
			if l != lang {
				r.log.Debugf("No %s for %s, using %s", projectsFile, lang, l)
			}
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: no %s for %s or %s", ErrContentMissing, projectsFile, lang, r.registry.DefaultLang())
}

// LoadProjectByID scans the catalog for lang. A missing project is a normal
// outcome and reported through the bool.
func (r *Repository) LoadProjectByID(id string, lang i18n.Lang) (models.Project, bool) {
	projects, err := r.LoadProjects(lang)
	if err != nil {
		r.log.Warnf("Loading projects for %s: %v", lang, err)
	}
	return models.FindProject(projects, id)
}

// validSegment rejects names that could escape their locale directory.
func validSegment(name string) bool {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return false
	}
	return name[0] != '.'
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
