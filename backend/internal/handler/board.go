package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kebab-dev/kebab/shared/api"
	"github.com/kebab-dev/kebab/shared/logger"
	"github.com/kebab-dev/kebab/shared/utils"
)

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var body api.CreateBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.board.Create(detached(r), *body.Title)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	logger.Log.Info("board created", "board_id", board.Id)
	utils.WriteJSON(w, http.StatusCreated, api.BoardResponse(*board))
}

func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.board.List(detached(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, boards)
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.board.Get(detached(r), chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.BoardDetailResponse(*board))
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.board.Delete(detached(r), id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	logger.Log.Info("board deleted", "board_id", id)
	w.WriteHeader(http.StatusNoContent)
}
