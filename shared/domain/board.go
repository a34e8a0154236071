package domain

import (
	"time"
)

// Board is the root of the board -> columns -> tasks aggregate.
type Board struct {
	Id        BoardId   `json:"id"`
	Title     Title     `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BoardWithColumns is the full aggregate returned by the single-board read.
// Columns is never nil so an empty board serializes as "columns": [].
type BoardWithColumns struct {
	Board
	Columns []ColumnWithTasks `json:"columns"`
}
