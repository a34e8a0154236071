package service

import (
	"context"

	"github.com/kebab-dev/kebab/shared/domain"
)

// to mock service in tests
type BoardService interface {
	List(ctx context.Context) ([]domain.Board, error)
	Get(ctx context.Context, rawId string) (*domain.BoardWithColumns, error)
	Create(ctx context.Context, title string) (*domain.Board, error)
	Delete(ctx context.Context, rawId string) error
}

type Board struct {
	storage   BoardStorage
	validator BoardValidator
}

type BoardStorage interface {
	CreateBoard(ctx context.Context, title domain.Title) (*domain.Board, error)
	GetBoards(ctx context.Context) ([]domain.Board, error)
	GetBoard(ctx context.Context, id domain.BoardId) (*domain.BoardWithColumns, error)
	DeleteBoard(ctx context.Context, id domain.BoardId) error
}

type BoardValidator interface {
	Title(title string) error
	Id(raw string) (domain.BoardId, error)
}

func NewBoard(storage BoardStorage, validator BoardValidator) BoardService {
	return &Board{storage, validator}
}

func (b *Board) List(ctx context.Context) ([]domain.Board, error) {
	boards, err := b.storage.GetBoards(ctx)
	if err != nil {
		return nil, err
	}
	if boards == nil {
		boards = []domain.Board{}
	}
	return boards, nil
}

func (b *Board) Get(ctx context.Context, rawId string) (*domain.BoardWithColumns, error) {
	id, err := b.validator.Id(rawId)
	if err != nil {
		return nil, err
	}

	board, err := b.storage.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	return board, nil
}

func (b *Board) Create(ctx context.Context, title string) (*domain.Board, error) {
	if err := b.validator.Title(title); err != nil {
		return nil, err
	}

	return b.storage.CreateBoard(ctx, title)
}

func (b *Board) Delete(ctx context.Context, rawId string) error {
	id, err := b.validator.Id(rawId)
	if err != nil {
		return err
	}

	return b.storage.DeleteBoard(ctx, id)
}
