package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/0xb0b1/portfolio/i18n"
	"github.com/0xb0b1/portfolio/models"
	"github.com/0xb0b1/portfolio/pages"
	"github.com/0xb0b1/portfolio/storage"
)

const contactBodyLimit = 64 << 10

// ContactHandler serves the contact page and accepts its form posts.
type ContactHandler struct {
	*Deps
	Submissions *storage.SubmissionLog
}

func (h *ContactHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	lang := h.lang(r)
	if r.Method != http.MethodPost {
		c, err := h.Site.Contact(lang, pages.ContactState{})
		h.page(w, r, c, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, contactBodyLimit)
	if err := r.ParseForm(); err != nil {
		h.Log.Warnf("Bad contact form from %s: %v", r.RemoteAddr, err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	form := models.ContactSubmission{
		Name:     r.PostForm.Get("name"),
		Email:    r.PostForm.Get("email"),
		Message:  r.PostForm.Get("message"),
		Honeypot: r.PostForm.Get("website"),
	}

	state, status := h.submit(form, lang)
	c, err := h.Site.Contact(lang, state)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, c, status)
}

// submit validates and records form. Spam is reported as success.
func (h *ContactHandler) submit(form models.ContactSubmission, lang i18n.Lang) (pages.ContactState, int) {
	if form.IsSpam() {
		h.Log.Infof("Discarded spam contact submission (%s)", lang)
		return pages.ContactState{Success: true}, http.StatusOK
	}
	if err := form.Validate(); err != nil {
		return pages.ContactState{Form: form, Err: err}, http.StatusBadRequest
	}

	s := h.Submissions.Record(form, string(lang))
	h.Log.Infof("Contact submission %s from %s", s.ID, s.Email)
	return pages.ContactState{Success: true}, http.StatusOK
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ContactAPIHandler accepts JSON contact submissions.
type ContactAPIHandler struct {
	*ContactHandler
}

func (h *ContactAPIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var form models.ContactSubmission
	r.Body = http.MaxBytesReader(w, r.Body, contactBodyLimit)
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	state, status := h.submit(form, h.lang(r))
	if state.Err != nil {
		h.writeError(w, status, pages.ContactErrorMessage(i18n.Messages{}, state.Err))
		return
	}
	h.writeJSON(w, http.StatusOK, contactResponse{Success: true, Message: "Message received successfully"})
}
