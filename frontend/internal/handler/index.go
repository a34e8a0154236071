package handler

import (
	"errors"
	"net/http"

	"github.com/kebab-dev/kebab/shared/domain"
	"github.com/kebab-dev/kebab/shared/validation"
)

type indexPage struct {
	Boards []domain.Board
	Title  string // echoed back into the form after a failed create
}

func (h *Handler) IndexGetHandler(w http.ResponseWriter, r *http.Request) {
	boards, err := h.APIClient.GetBoards(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.renderTemplate(w, http.StatusOK, "index.html", TemplateData{Data: indexPage{Boards: boards}})
}

// IndexPostHandler creates a board from the index form and opens it.
func (h *Handler) IndexPostHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderTemplate(w, http.StatusBadRequest, "error.html", TemplateData{Error: "Invalid form data"})
		return
	}
	title := r.PostFormValue("title")

	board, err := h.APIClient.CreateBoard(r.Context(), title)
	if err != nil {
		var verr *validation.Error
		if !errors.As(err, &verr) {
			h.renderError(w, r, err)
			return
		}
		boards, listErr := h.APIClient.GetBoards(r.Context())
		if listErr != nil {
			h.renderError(w, r, listErr)
			return
		}
		h.renderTemplate(w, http.StatusBadRequest, "index.html", TemplateData{
			Data:   indexPage{Boards: boards, Title: title},
			Issues: verr.Issues,
		})
		return
	}

	http.Redirect(w, r, "/boards/"+board.Id.String(), http.StatusSeeOther)
}
