package pages

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/0xb0b1/portfolio/config"
	"github.com/0xb0b1/portfolio/i18n"
	"github.com/0xb0b1/portfolio/models"
)

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func newTestSite(t *testing.T, deployTarget string) *Site {
	t.Helper()
	root := t.TempDir()

	writeFile(t, root, "content/en/home.md", "---\ntitle: Hi, I'm Islam\n---\nI build **mobile apps**.\n")
	writeFile(t, root, "content/en/about.md", "---\ntitle: About Me\ndescription: Who I am\nskills: [Go, Flutter]\n---\n## Skills\n\n```go\nfmt.Println(\"hi\")\n```\n")
	writeFile(t, root, "content/en/projects.json", `[
		{"id": "quran-app", "name": "Quran App", "description": "Mobile reader", "longDescription": "A **fast** reader.", "tech": ["Flutter", "Dart", "Firebase", "Hive", "Provider"], "featured": true, "apk": "/apk/quran.apk", "demo": "https://example.com"},
		{"id": "portfolio", "name": "Portfolio", "description": "This site", "tech": ["Go"], "featured": true, "github": "https://github.com/islamux/portfolio"},
		{"id": "cli", "name": "CLI", "description": "A tool", "tech": ["Go"]}
	]`)
	writeFile(t, root, "content/fr/projects.json", `[
		{"id": "quran-app", "name": "Application Coran", "description": "Lecteur mobile", "tech": ["Flutter"], "featured": true}
	]`)
	writeFile(t, root, "messages/en.json", `{
		"nav": {"home": "Home", "about": "About", "projects": "Projects", "contact": "Contact"},
		"projects": {"title": "Projects", "card": {"more": "more", "apk": "Download APK"}},
		"contact": {"title": "Contact", "errors": {"email": "Invalid email address"}}
	}`)
	writeFile(t, root, "messages/fr.json", `{"nav": {"home": "Accueil", "about": "À propos"}, "notFound": {"title": "Page introuvable"}}`)

	cfg := &config.Config{
		ContentDir:      filepath.Join(root, "content"),
		MessagesDir:     filepath.Join(root, "messages"),
		DeployTarget:    deployTarget,
		ProjectsPerPage: 2,
		FeaturedLimit:   3,
		CodeStyle:       "github",
		Site: config.Site{
			Name:  "Islamux",
			Title: "Islamux - Mobile Developer",
			URL:   "https://islamux.dev",
			Email: "me@islamux.dev",
			Social: []config.SocialLink{
				{Name: "GitHub", Href: "https://github.com/islamux", Icon: "github"},
			},
		},
	}
	site := New(cfg, zaptest.NewLogger(t).Sugar())
	site.Now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	return site
}

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestHome(t *testing.T) {
	site := newTestSite(t, "server")

	c, err := site.Home(i18n.EN)
	require.NoError(t, err)
	html := renderString(t, c)

	assert.Contains(t, html, `<html lang="en" dir="ltr">`)
	assert.Contains(t, html, "<title>Islamux - Mobile Developer</title>")
	assert.Contains(t, html, "<strong>mobile apps</strong>")
	assert.Contains(t, html, `href="/projects/quran-app"`)
	assert.Contains(t, html, `href="/projects/portfolio"`)
	assert.NotContains(t, html, `href="/projects/cli"`)
	assert.Contains(t, html, "+2 more")
	assert.Contains(t, html, "&copy; 2025 Islamux.")
	assert.Contains(t, html, `hreflang="fr" href="/fr"`)
}

func TestHomeFallsBackWithoutDocument(t *testing.T) {
	site := newTestSite(t, "server")

	c, err := site.Home(i18n.AR)
	require.NoError(t, err)
	html := renderString(t, c)

	assert.Contains(t, html, `<html lang="ar" dir="rtl">`)
	assert.Contains(t, html, `content="ar_SA"`)
	assert.Contains(t, html, "<h1>Islamux</h1>")
	// ar has no catalog, so the default one is used
	assert.Contains(t, html, `href="/ar/projects/quran-app"`)
}

func TestAbout(t *testing.T) {
	site := newTestSite(t, "server")

	c, err := site.About(i18n.FR)
	require.NoError(t, err)
	html := renderString(t, c)

	// fr has no about.md
	assert.Contains(t, html, "<h1>About</h1>")
	assert.Contains(t, html, `class="active" aria-current="page">À propos</a>`)
	assert.Contains(t, html, `href="/fr/about"`)

	c, err = site.About(i18n.EN)
	require.NoError(t, err)
	html = renderString(t, c)
	assert.Contains(t, html, "<title>About Me - Islamux</title>")
	assert.Contains(t, html, `<h2 id="skills">Skills</h2>`)
	assert.Contains(t, html, "<li>Flutter</li>")
	assert.Contains(t, html, `class="chroma"`)
}

func TestProjectsFilterAndPagination(t *testing.T) {
	site := newTestSite(t, "server")

	c, err := site.Projects(i18n.EN, ProjectsQuery{})
	require.NoError(t, err)
	html := renderString(t, c)
	assert.Contains(t, html, `href="/projects/quran-app"`)
	assert.Contains(t, html, `href="/projects/portfolio"`)
	assert.NotContains(t, html, `href="/projects/cli"`)
	assert.Contains(t, html, "1 / 2")
	assert.Contains(t, html, `href="/projects?page=2"`)
	assert.Contains(t, html, `href="/projects?tech=Go"`)
	assert.Contains(t, html, `>Go <span class="count">2</span>`)

	c, err = site.Projects(i18n.EN, ProjectsQuery{Tech: "Go"})
	require.NoError(t, err)
	html = renderString(t, c)
	assert.NotContains(t, html, `href="/projects/quran-app"`)
	assert.Contains(t, html, `href="/projects/portfolio"`)
	assert.Contains(t, html, `href="/projects/cli"`)
	assert.NotContains(t, html, `class="pagination"`)

	c, err = site.Projects(i18n.EN, ProjectsQuery{Tech: "Rust"})
	require.NoError(t, err)
	html = renderString(t, c)
	assert.Contains(t, html, `class="empty"`)
	assert.Contains(t, html, "<strong>Rust</strong>")
}

func TestProjectsStaticListsEverything(t *testing.T) {
	site := newTestSite(t, config.DeployStatic)

	c, err := site.Projects(i18n.EN, ProjectsQuery{Page: 2})
	require.NoError(t, err)
	html := renderString(t, c)

	for _, id := range []string{"quran-app", "portfolio", "cli"} {
		assert.Contains(t, html, `href="/en/projects/`+id+`/"`)
	}
	assert.NotContains(t, html, `class="pagination"`)
}

func TestProject(t *testing.T) {
	site := newTestSite(t, "server")

	c, found, err := site.Project(i18n.EN, "quran-app")
	require.NoError(t, err)
	require.True(t, found)
	html := renderString(t, c)
	assert.Contains(t, html, "<title>Quran App - Islamux</title>")
	assert.Contains(t, html, "<strong>fast</strong>")
	assert.Contains(t, html, `href="/apk/quran.apk"`)
	assert.NotContains(t, html, "https://example.com")
	assert.Contains(t, html, `hreflang="fr" href="/fr/projects/quran-app"`)
	assert.Contains(t, html, `class="active" aria-current="page">Projects</a>`)

	c, found, err = site.Project(i18n.FR, "quran-app")
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, renderString(t, c), "Application Coran")

	_, found, err = site.Project(i18n.FR, "portfolio")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestContact(t *testing.T) {
	site := newTestSite(t, "server")

	c, err := site.Contact(i18n.EN, ContactState{})
	require.NoError(t, err)
	html := renderString(t, c)
	assert.Contains(t, html, `action="/contact"`)
	assert.NotContains(t, html, "text/plain")
	assert.Contains(t, html, `name="website"`)

	form := models.ContactSubmission{Name: "Ali", Email: "bad", Message: "Hello there friend"}
	c, err = site.Contact(i18n.EN, ContactState{Form: form, Err: form.Validate()})
	require.NoError(t, err)
	html = renderString(t, c)
	assert.Contains(t, html, "Invalid email address")
	assert.Contains(t, html, `value="Ali"`)

	c, err = site.Contact(i18n.EN, ContactState{Success: true})
	require.NoError(t, err)
	assert.Contains(t, renderString(t, c), `class="alert success"`)
}

func TestContactStaticUsesMailto(t *testing.T) {
	site := newTestSite(t, config.DeployStatic)

	c, err := site.Contact(i18n.FR, ContactState{})
	require.NoError(t, err)
	html := renderString(t, c)
	assert.Contains(t, html, `action="mailto:me@islamux.dev"`)
	assert.Contains(t, html, `enctype="text/plain"`)
}

func TestContactErrorMessage(t *testing.T) {
	msgs := i18n.Messages{}
	assert.Equal(t, "Missing required fields", ContactErrorMessage(msgs, models.ErrMissingFields))
	assert.Equal(t, "Message too short (minimum 10 characters)", ContactErrorMessage(msgs, models.ErrMessageTooShort))
	assert.Equal(t, "Something went wrong", ContactErrorMessage(msgs, assert.AnError))
}

func TestNotFound(t *testing.T) {
	site := newTestSite(t, "server")

	c, err := site.NotFound(i18n.FR)
	require.NoError(t, err)
	html := renderString(t, c)
	assert.Contains(t, html, "<h1>Page introuvable</h1>")
	assert.Contains(t, html, `class="button primary" href="/fr"`)
}

func TestLayoutRejectsUnknownLang(t *testing.T) {
	site := newTestSite(t, "server")

	_, err := site.About(i18n.Lang("de"))
	assert.ErrorIs(t, err, i18n.ErrUnknownLocale)
}

func TestCardsSkipUnsafeIDs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "content/en/projects.json", `[
		{"id": "a b/c?d", "name": "Broken", "tech": ["Go"]},
		{"id": "cli", "name": "CLI", "tech": ["Go"]}
	]`)
	cfg := &config.Config{
		ContentDir:  filepath.Join(root, "content"),
		MessagesDir: filepath.Join(root, "messages"),
		CodeStyle:   "github",
	}
	site := New(cfg, zaptest.NewLogger(t).Sugar())

	c, err := site.Projects(i18n.EN, ProjectsQuery{})
	require.NoError(t, err)
	html := renderString(t, c)
	assert.Contains(t, html, `href="/projects/cli"`)
	assert.NotContains(t, html, "Broken")

	_, found, err := site.Project(i18n.EN, "a b/c?d")
	require.NoError(t, err)
	assert.False(t, found)
}
