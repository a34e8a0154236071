package domain

import "time"

type Task struct {
	Id          TaskId      `json:"id"`
	ColumnId    ColumnId    `json:"columnId"`
	Title       Title       `json:"title"`
	Description Description `json:"description"`
	Order       Order       `json:"order"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type TaskCreationData struct {
	ColumnId    ColumnId
	Title       Title
	Description Description
	Order       Order
}
