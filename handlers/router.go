package handlers

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/0xb0b1/portfolio/i18n"
	"github.com/0xb0b1/portfolio/pages"
	"github.com/0xb0b1/portfolio/routes"
	"github.com/0xb0b1/portfolio/storage"
)

// LocaleCookie remembers the last locale a visitor viewed.
const LocaleCookie = "locale"

const localeCookieMaxAge = 365 * 24 * 60 * 60

// NewRouter builds the dynamic site. The default locale is served
// unprefixed, every other locale under /{locale}.
func NewRouter(site *pages.Site, submissions *storage.SubmissionLog, staticDir string, log *zap.SugaredLogger) (http.Handler, error) {
	var css bytes.Buffer
	if err := site.Markdown.WriteCSS(&css); err != nil {
		return nil, err
	}

	d := &Deps{Site: site, Log: log}
	contact := &ContactHandler{Deps: d, Submissions: submissions}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		d.notFound(w, r, d.pathLang(r.URL.Path))
	})

	r.Get("/static/chroma.css", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		_, _ = w.Write(css.Bytes())
	})
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	r.Method(http.MethodPost, "/api/contact", &ContactAPIHandler{ContactHandler: contact})

	mount := func(r chi.Router) {
		r.Use(d.rememberLocale)
		r.Method(http.MethodGet, "/about", &AboutHandler{Deps: d})
		r.Method(http.MethodGet, "/projects", &ProjectsHandler{Deps: d})
		r.Method(http.MethodGet, "/projects/{id}", &ProjectHandler{Deps: d})
		r.Method(http.MethodGet, "/contact", contact)
		r.Method(http.MethodPost, "/contact", contact)
	}

	r.Get("/", d.detectLocale(&HomeHandler{Deps: d}))
	r.Group(mount)
	r.Route("/{locale}", func(r chi.Router) {
		r.Use(d.prefixedLocale)
		mount(r)
		r.Method(http.MethodGet, "/", &HomeHandler{Deps: d})
	})

	return r, nil
}

// pathLang picks the not-found page language from the first path segment.
func (d *Deps) pathLang(path string) i18n.Lang {
	first, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if lang, err := d.Site.Registry.Parse(first); err == nil {
		return lang
	}
	return d.Site.Registry.DefaultLang()
}

// prefixedLocale validates {locale}. The default locale is canonical without
// a prefix, so /en/... redirects there.
func (d *Deps) prefixedLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang, err := d.Site.Registry.Parse(chi.URLParam(r, "locale"))
		if err != nil {
			d.notFound(w, r, d.Site.Registry.DefaultLang())
			return
		}
		if lang == d.Site.Registry.DefaultLang() {
			target := strings.TrimPrefix(r.URL.Path, "/"+string(lang))
			if target == "" {
				target = "/"
			}
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusTemporaryRedirect)
			return
		}
		next.ServeHTTP(w, r.WithContext(i18n.WithLang(r.Context(), lang)))
	})
}

// rememberLocale refreshes the locale cookie on page views.
func (d *Deps) rememberLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			http.SetCookie(w, &http.Cookie{
				Name:     LocaleCookie,
				Value:    string(d.lang(r)),
				Path:     "/",
				MaxAge:   localeCookieMaxAge,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r)
	})
}

// detectLocale sends first-time visitors of / to the home page of their
// preferred language. A visitor with a valid locale cookie has already
// chosen, so / is served as the default locale.
func (d *Deps) detectLocale(home http.Handler) http.HandlerFunc {
	remembered := d.rememberLocale(home)
	return func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(LocaleCookie); err == nil && d.Site.Registry.IsSupported(c.Value) {
			remembered.ServeHTTP(w, r)
			return
		}

		lang := d.Site.Registry.Match(r.Header.Get("Accept-Language"))
		if lang == d.Site.Registry.DefaultLang() {
			remembered.ServeHTTP(w, r)
			return
		}

		http.Redirect(w, r, d.Site.Paths.MustHref(lang, routes.Home), http.StatusTemporaryRedirect)
	}
}

func accessLog(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.Infow("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
