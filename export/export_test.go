package export

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/0xb0b1/portfolio/config"
	"github.com/0xb0b1/portfolio/pages"
)

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func newTestExporter(t *testing.T, deployTarget string) (*Exporter, string) {
	t.Helper()
	root := t.TempDir()

	writeFile(t, root, "content/en/home.md", "Hello.\n")
	writeFile(t, root, "content/en/projects.json", `[
		{"id": "quran-app", "name": "Quran App", "description": "Reader", "tech": ["Flutter"], "featured": true},
		{"id": "portfolio", "name": "Portfolio", "description": "This site", "tech": ["Go"]}
	]`)
	writeFile(t, root, "content/fr/projects.json", `[{"id": "quran-app", "name": "Application Coran", "description": "Lecteur", "tech": ["Flutter"]}]`)
	writeFile(t, root, "static/site.css", "body {}\n")
	writeFile(t, root, "static/img/logo.svg", "<svg></svg>\n")

	cfg := &config.Config{
		ContentDir:   filepath.Join(root, "content"),
		MessagesDir:  filepath.Join(root, "messages"),
		StaticDir:    filepath.Join(root, "static"),
		OutputDir:    filepath.Join(root, "out"),
		DeployTarget: deployTarget,
		CodeStyle:    "monokai",
		Site:         config.Site{Name: "Islamux", Email: "me@islamux.dev"},
	}
	log := zaptest.NewLogger(t).Sugar()
	return &Exporter{
		Site:      pages.New(cfg, log),
		StaticDir: cfg.StaticDir,
		OutputDir: cfg.OutputDir,
		Log:       log,
	}, cfg.OutputDir
}

func TestExport(t *testing.T) {
	e, out := newTestExporter(t, config.DeployStatic)

	// stale output is removed
	writeFile(t, out, "stale.html", "old")

	stats, err := e.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, stats.Pages)
	// fr has one project, every other locale falls back to the two in en
	assert.Equal(t, 9, stats.Projects)

	for _, rel := range []string{
		"index.html",
		"en/about/index.html",
		"en/projects/index.html",
		"en/contact/index.html",
		"fr/index.html",
		"ar/about/index.html",
		"en/projects/portfolio/index.html",
		"fr/projects/quran-app/index.html",
		"tr/projects/portfolio/index.html",
		"404.html",
		"static/site.css",
		"static/img/logo.svg",
		"static/chroma.css",
	} {
		assert.FileExists(t, filepath.Join(out, filepath.FromSlash(rel)))
	}
	assert.NoFileExists(t, filepath.Join(out, "stale.html"))
	assert.NoFileExists(t, filepath.Join(out, "fr", "projects", "portfolio", "index.html"))

	home, err := os.ReadFile(filepath.Join(out, "fr", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(home), `<html lang="fr" dir="ltr">`)
	assert.Contains(t, string(home), `hreflang="en" href="/"`)

	list, err := os.ReadFile(filepath.Join(out, "fr", "projects", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(list), `href="/fr/projects/quran-app/"`)

	contact, err := os.ReadFile(filepath.Join(out, "en", "contact", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(contact), `action="mailto:me@islamux.dev"`)

	css, err := os.ReadFile(filepath.Join(out, "static", "chroma.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), ".chroma")
}

func TestExportSkipsUnsafeProjectIDs(t *testing.T) {
	e, out := newTestExporter(t, config.DeployStatic)
	root := filepath.Dir(out)
	writeFile(t, root, "content/en/projects.json", `[
		{"id": "../../../../escaped", "name": "Escaped", "tech": ["Go"]},
		{"id": "portfolio", "name": "Portfolio", "tech": ["Go"]}
	]`)

	stats, err := e.Export(context.Background())
	require.NoError(t, err)
	// fr keeps its own catalog, the other four locales get portfolio
	assert.Equal(t, 5, stats.Projects)

	assert.NoDirExists(t, filepath.Join(root, "escaped"))
	assert.NoDirExists(t, filepath.Join(filepath.Dir(root), "escaped"))
	assert.FileExists(t, filepath.Join(out, "en", "projects", "portfolio", "index.html"))
}

func TestExportRequiresStaticPaths(t *testing.T) {
	e, _ := newTestExporter(t, "server")

	_, err := e.Export(context.Background())
	assert.Error(t, err)
}

func TestExportRefusesDangerousOutputDir(t *testing.T) {
	for _, dir := range []string{"", ".", "/"} {
		e, _ := newTestExporter(t, config.DeployStatic)
		e.OutputDir = dir

		_, err := e.Export(context.Background())
		assert.Error(t, err, dir)
	}
}

func TestWatcherRebuildsOnChange(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en/home.md", "v1")

	w, err := NewWatcher([]string{dir, filepath.Join(dir, "missing")}, 20*time.Millisecond, zap.NewNop().Sugar())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rebuilds atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() error {
			rebuilds.Add(1)
			return nil
		})
	}()

	writeFile(t, dir, "en/home.md", "v2")
	require.Eventually(t, func() bool { return rebuilds.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
