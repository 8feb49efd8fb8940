// Package export renders the whole site to a directory of static files.
// Every page lands at {href}/index.html so any static host can serve it.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/0xb0b1/portfolio/i18n"
	"github.com/0xb0b1/portfolio/pages"
	"github.com/0xb0b1/portfolio/routes"
)

// Exporter writes the site built by Site into OutputDir. Site must use
// static paths.
type Exporter struct {
	Site      *pages.Site
	StaticDir string
	OutputDir string
	Log       *zap.SugaredLogger
}

// Stats summarizes one export.
type Stats struct {
	Pages    int
	Projects int
}

// Export cleans OutputDir and writes every page, the static assets and the
// code highlighting stylesheet.
func (e *Exporter) Export(ctx context.Context) (Stats, error) {
	var stats Stats
	if !e.Site.Paths.Static() {
		return stats, errors.New("export needs static paths")
	}
	if err := e.clean(); err != nil {
		return stats, err
	}

	if _, err := os.Stat(e.StaticDir); err == nil {
		if err := copyDirContents(e.StaticDir, filepath.Join(e.OutputDir, "static")); err != nil {
			return stats, fmt.Errorf("copy static assets: %w", err)
		}
	} else {
		e.Log.Warnf("Static directory %s not found, skipping", e.StaticDir)
	}
	if err := e.writeCSS(); err != nil {
		return stats, err
	}

	for _, lang := range e.Site.Registry.Langs() {
		for _, route := range routes.Pages {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
			c, err := e.page(lang, route)
			if err != nil {
				return stats, fmt.Errorf("render %s %s: %w", lang, route, err)
			}
			href, err := e.Site.Paths.Href(lang, route)
			if err != nil {
				return stats, err
			}
			if err := e.write(ctx, href, c); err != nil {
				return stats, err
			}
			stats.Pages++
		}
	}

	for _, p := range e.Site.ProjectService.StaticParams() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		c, found, err := e.Site.Project(p.Lang, p.ID)
		if err != nil {
			return stats, fmt.Errorf("render project %s/%s: %w", p.Lang, p.ID, err)
		}
		if !found {
			continue
		}
		href, err := e.Site.Paths.ProjectHref(p.Lang, p.ID)
		if err != nil {
			return stats, err
		}
		if err := e.write(ctx, href, c); err != nil {
			return stats, err
		}
		stats.Projects++
	}

	notFound, err := e.Site.NotFound(e.Site.Registry.DefaultLang())
	if err != nil {
		return stats, fmt.Errorf("render 404: %w", err)
	}
	if err := e.writeFile(ctx, filepath.Join(e.OutputDir, "404.html"), notFound); err != nil {
		return stats, err
	}

	e.Log.Infof("Exported %d pages and %d project pages to %s", stats.Pages, stats.Projects, e.OutputDir)
	return stats, nil
}

func (e *Exporter) page(lang i18n.Lang, route routes.Route) (templ.Component, error) {
	switch route {
	case routes.Home:
		return e.Site.Home(lang)
	case routes.About:
		return e.Site.About(lang)
	case routes.Projects:
		return e.Site.Projects(lang, pages.ProjectsQuery{})
	case routes.Contact:
		return e.Site.Contact(lang, pages.ContactState{})
	}
	return nil, routes.ErrUnknownRoute
}

// clean empties OutputDir, refusing paths that would wipe something else.
func (e *Exporter) clean() error {
	out := filepath.Clean(e.OutputDir)
	if e.OutputDir == "" || out == "." || out == string(filepath.Separator) {
		return fmt.Errorf("refusing to clean output directory %q", e.OutputDir)
	}
	if err := os.RemoveAll(out); err != nil {
		return fmt.Errorf("clean output directory: %w", err)
	}
	return os.MkdirAll(out, os.ModePerm)
}

func (e *Exporter) writeCSS() error {
	path := filepath.Join(e.OutputDir, "static", "chroma.css")
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return e.Site.Markdown.WriteCSS(f)
}

func (e *Exporter) write(ctx context.Context, href string, c templ.Component) error {
	return e.writeFile(ctx, filepath.Join(e.OutputDir, filepath.FromSlash(href), "index.html"), c)
}

func (e *Exporter) writeFile(ctx context.Context, path string, c templ.Component) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := c.Render(ctx, f); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return nil
}

// copyDirContents copies the tree under src into dst.
func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		dstPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			return os.MkdirAll(dstPath, os.ModePerm)
		}
		return copyFile(path, dstPath)
	})
}

func copyFile(srcFile, dstFile string) error {
	srcF, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer srcF.Close()

	dstF, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	defer dstF.Close()

	if _, err := io.Copy(dstF, srcF); err != nil {
		return fmt.Errorf("failed to copy data from %s to %s: %w", srcFile, dstFile, err)
	}
	return nil
}
