package handler

import (
	"bytes"
	"errors"
	"net/http"

	internal_errors "github.com/kebab-dev/kebab/shared/errors"
	"github.com/kebab-dev/kebab/shared/logger"
	"github.com/kebab-dev/kebab/shared/validation"
)

// TemplateData wraps page-specific data with the banner fields of base.html.
type TemplateData struct {
	Data   any
	Error  string
	Issues []validation.Issue
}

func (h *Handler) renderTemplate(w http.ResponseWriter, status int, name string, data TemplateData) {
	tmpl, ok := h.Templates[name]
	if !ok {
		logger.Log.Error("template not found", "template", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, data); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// renderError picks the page for an error returned by the backend client.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	if internal_errors.IsNotFound(err) {
		h.NotFoundHandler(w, r)
		return
	}
	var verr *validation.Error
	if errors.As(err, &verr) {
		// only a malformed board id reaches here
		h.NotFoundHandler(w, r)
		return
	}
	logger.Log.Error("backend request failed", "path", r.URL.Path, "error", err)
	h.renderTemplate(w, http.StatusBadGateway, "error.html", TemplateData{Error: "The board service is unavailable, try again later."})
}

func (h *Handler) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, http.StatusNotFound, "not_found.html", TemplateData{})
}
