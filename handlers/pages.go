package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/0xb0b1/portfolio/pages"
)

type HomeHandler struct {
	*Deps
}

func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := h.Site.Home(h.lang(r))
	h.page(w, r, c, err)
}

type AboutHandler struct {
	*Deps
}

func (h *AboutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := h.Site.About(h.lang(r))
	h.page(w, r, c, err)
}

// ProjectsHandler lists projects, honoring ?tech= and ?page=.
type ProjectsHandler struct {
	*Deps
}

func (h *ProjectsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	c, err := h.Site.Projects(h.lang(r), pages.ProjectsQuery{Tech: q.Get("tech"), Page: page})
	h.page(w, r, c, err)
}

// ProjectHandler shows a single project by its {id} URL parameter.
type ProjectHandler struct {
	*Deps
}

func (h *ProjectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	lang := h.lang(r)
	id := chi.URLParam(r, "id")

	c, found, err := h.Site.Project(lang, id)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if !found {
		h.notFound(w, r, lang)
		return
	}
	h.render(w, r, c, http.StatusOK)
}
