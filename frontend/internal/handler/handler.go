package handler

import (
	"context"
	"html/template"

	"github.com/kebab-dev/kebab/shared/api"
	"github.com/kebab-dev/kebab/shared/domain"
)

// BoardAPI is the part of the backend client the pages use.
type BoardAPI interface {
	GetBoards(ctx context.Context) ([]domain.Board, error)
	GetBoard(ctx context.Context, id string) (*api.BoardDetailResponse, error)
	CreateBoard(ctx context.Context, title string) (*api.BoardResponse, error)
	DeleteBoard(ctx context.Context, id string) error
}

type Handler struct {
	Templates map[string]*template.Template
	APIClient BoardAPI
}

func New(templates map[string]*template.Template, apiClient BoardAPI) *Handler {
	return &Handler{
		Templates: templates,
		APIClient: apiClient,
	}
}
