package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kebab-dev/kebab/shared/domain"
	internal_errors "github.com/kebab-dev/kebab/shared/errors"
	sharedpg "github.com/kebab-dev/kebab/shared/storage/pg"
)

func (s *Storage) CreateBoard(ctx context.Context, title domain.Title) (*domain.Board, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return createBoard(ctx, s.db, title)
}

func createBoard(ctx context.Context, q sharedpg.Querier, title domain.Title) (*domain.Board, error) {
	var b domain.Board
	err := q.QueryRowContext(ctx,
		"INSERT INTO boards(title) VALUES($1) RETURNING id, title, created_at, updated_at",
		title,
	).Scan(&b.Id, &b.Title, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert board: %w", err)
	}
	return &b, nil
}

// GetBoards returns every board, oldest first.
func (s *Storage) GetBoards(ctx context.Context) ([]domain.Board, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, "SELECT id, title, created_at, updated_at FROM boards ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query boards: %w", err)
	}
	defer rows.Close()

	boards := []domain.Board{}
	for rows.Next() {
		var b domain.Board
		if err := rows.Scan(&b.Id, &b.Title, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan board row: %w", err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return boards, nil
}

// GetBoard assembles the board with its ordered columns and each column's ordered tasks.
// All three reads share one snapshot.
func (s *Storage) GetBoard(ctx context.Context, id domain.BoardId) (*domain.BoardWithColumns, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var board domain.BoardWithColumns
	err := sharedpg.WithTx(ctx, s.db, sharedpg.ReadOnlySnapshot, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			"SELECT id, title, created_at, updated_at FROM boards WHERE id = $1", id,
		).Scan(&board.Id, &board.Title, &board.CreatedAt, &board.UpdatedAt)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return internal_errors.NotFound("Board")
			}
			return fmt.Errorf("failed to get board: %w", err)
		}

		columns, err := getColumns(ctx, tx, id)
		if err != nil {
			return err
		}
		tasks, err := getBoardTasks(ctx, tx, id)
		if err != nil {
			return err
		}
		board.Columns = groupTasks(columns, tasks)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// DeleteBoard removes the board; columns and tasks go with it through ON DELETE CASCADE.
func (s *Storage) DeleteBoard(ctx context.Context, id domain.BoardId) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	result, err := s.db.ExecContext(ctx, "DELETE FROM boards WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return internal_errors.NotFound("Board")
	}
	return nil
}

// Reset deletes every board (and by cascade everything else). Returns the ids of the removed boards.
func (s *Storage) Reset(ctx context.Context) ([]domain.BoardId, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, "DELETE FROM boards RETURNING id")
	if err != nil {
		return nil, fmt.Errorf("failed to reset boards: %w", err)
	}
	defer rows.Close()

	removed := []domain.BoardId{}
	for rows.Next() {
		var id domain.BoardId
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan removed board id: %w", err)
		}
		removed = append(removed, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to reset boards: %w", err)
	}
	return removed, nil
}
