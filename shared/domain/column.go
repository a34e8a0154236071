package domain

import "time"

type Column struct {
	Id        ColumnId  `json:"id"`
	BoardId   BoardId   `json:"boardId"`
	Title     Title     `json:"title"`
	Order     Order     `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ColumnWithTasks struct {
	Column
	Tasks []Task `json:"tasks"`
}

// to iterate thru layers: seed/fixtures -> storage
type ColumnCreationData struct {
	BoardId BoardId
	Title   Title
	Order   Order
}
