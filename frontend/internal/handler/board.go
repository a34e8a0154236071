package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) BoardGetHandler(w http.ResponseWriter, r *http.Request) {
	board, err := h.APIClient.GetBoard(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.renderTemplate(w, http.StatusOK, "board.html", TemplateData{Data: board})
}

// BoardDeleteHandler is a POST target since html forms cannot send DELETE.
func (h *Handler) BoardDeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.APIClient.DeleteBoard(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
