package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kebab-dev/kebab/shared/domain"
	internal_errors "github.com/kebab-dev/kebab/shared/errors"
	sharedpg "github.com/kebab-dev/kebab/shared/storage/pg"
)

// Columns and tasks have no HTTP endpoints; they are created by seed and test fixtures.

func (s *Storage) CreateColumn(ctx context.Context, data domain.ColumnCreationData) (*domain.Column, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return createColumn(ctx, s.db, data)
}

func (s *Storage) CreateTask(ctx context.Context, data domain.TaskCreationData) (*domain.Task, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return createTask(ctx, s.db, data)
}

func createColumn(ctx context.Context, q sharedpg.Querier, data domain.ColumnCreationData) (*domain.Column, error) {
	var c domain.Column
	err := q.QueryRowContext(ctx, `
		INSERT INTO columns(board_id, title, "order") VALUES($1, $2, $3)
		RETURNING id, board_id, title, "order", created_at, updated_at`,
		data.BoardId, data.Title, data.Order,
	).Scan(&c.Id, &c.BoardId, &c.Title, &c.Order, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if sharedpg.IsForeignKeyViolation(err) {
			return nil, internal_errors.NotFound("Board")
		}
		return nil, fmt.Errorf("failed to insert column: %w", err)
	}
	return &c, nil
}

func createTask(ctx context.Context, q sharedpg.Querier, data domain.TaskCreationData) (*domain.Task, error) {
	var (
		t    domain.Task
		desc sql.NullString
	)
	err := q.QueryRowContext(ctx, `
		INSERT INTO tasks(column_id, title, description, "order") VALUES($1, $2, $3, $4)
		RETURNING id, column_id, title, description, "order", created_at, updated_at`,
		data.ColumnId, data.Title, data.Description, data.Order,
	).Scan(&t.Id, &t.ColumnId, &t.Title, &desc, &t.Order, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if sharedpg.IsForeignKeyViolation(err) {
			return nil, internal_errors.NotFound("Column")
		}
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}
	t.Description = nullableString(desc)
	return &t, nil
}

func getColumns(ctx context.Context, q sharedpg.Querier, boardId domain.BoardId) ([]domain.Column, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, board_id, title, "order", created_at, updated_at
		FROM columns
		WHERE board_id = $1
		ORDER BY "order", created_at, id`,
		boardId,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer rows.Close()

	var columns []domain.Column
	for rows.Next() {
		var c domain.Column
		if err := rows.Scan(&c.Id, &c.BoardId, &c.Title, &c.Order, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan column row: %w", err)
		}
		columns = append(columns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return columns, nil
}

// getBoardTasks fetches the tasks of all the board's columns in one query
// instead of one query per column. Rows come back in task order.
func getBoardTasks(ctx context.Context, q sharedpg.Querier, boardId domain.BoardId) ([]domain.Task, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT t.id, t.column_id, t.title, t.description, t."order", t.created_at, t.updated_at
		FROM tasks AS t
		JOIN columns AS c ON c.id = t.column_id
		WHERE c.board_id = $1
		ORDER BY t."order", t.created_at, t.id`,
		boardId,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var (
			t    domain.Task
			desc sql.NullString
		)
		if err := rows.Scan(&t.Id, &t.ColumnId, &t.Title, &desc, &t.Order, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		t.Description = nullableString(desc)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return tasks, nil
}

// groupTasks nests tasks under their columns. tasks must already be sorted;
// a stable pass keeps that order inside every column.
func groupTasks(columns []domain.Column, tasks []domain.Task) []domain.ColumnWithTasks {
	result := make([]domain.ColumnWithTasks, len(columns))
	index := make(map[domain.ColumnId]int, len(columns))
	for i, c := range columns {
		result[i] = domain.ColumnWithTasks{Column: c, Tasks: []domain.Task{}}
		index[c.Id] = i
	}
	for _, t := range tasks {
		if i, ok := index[t.ColumnId]; ok {
			result[i].Tasks = append(result[i].Tasks, t)
		}
	}
	return result
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
