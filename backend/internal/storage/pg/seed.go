package pg

import (
	"context"
	"database/sql"

	"github.com/kebab-dev/kebab/shared/domain"
	sharedpg "github.com/kebab-dev/kebab/shared/storage/pg"
)

type seedTask struct {
	title       string
	description string
}

// sample board: column title -> tasks, in display order
var seedColumns = []struct {
	title string
	tasks []seedTask
}{
	{"To Do", []seedTask{
		{"Setup project repository", "Initialize the project with all necessary configuration"},
		{"Design database schema", "Create tables for boards, columns, and tasks"},
	}},
	{"In Progress", []seedTask{
		{"Implement backend API", "Build REST API endpoints"},
		{"Build frontend UI", "Create the pages for the kanban board"},
	}},
	{"Done", []seedTask{
		{"Write documentation", "Document the project setup and architecture"},
	}},
}

const seedBoardTitle = "My First Board"

// Seed inserts a sample board with three columns and five tasks in one transaction.
func (s *Storage) Seed(ctx context.Context) (*domain.BoardWithColumns, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.BoardWithColumns
	err := sharedpg.WithTx(ctx, s.db, nil, func(tx *sql.Tx) error {
		board, err := createBoard(ctx, tx, seedBoardTitle)
		if err != nil {
			return err
		}
		result = domain.BoardWithColumns{Board: *board, Columns: make([]domain.ColumnWithTasks, 0, len(seedColumns))}

		for order, sc := range seedColumns {
			column, err := createColumn(ctx, tx, domain.ColumnCreationData{BoardId: board.Id, Title: sc.title, Order: order})
			if err != nil {
				return err
			}
			cwt := domain.ColumnWithTasks{Column: *column, Tasks: make([]domain.Task, 0, len(sc.tasks))}
			for taskOrder, st := range sc.tasks {
				task, err := createTask(ctx, tx, domain.TaskCreationData{
					ColumnId:    column.Id,
					Title:       st.title,
					Description: domain.Ptr(st.description),
					Order:       taskOrder,
				})
				if err != nil {
					return err
				}
				cwt.Tasks = append(cwt.Tasks, *task)
			}
			result.Columns = append(result.Columns, cwt)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
