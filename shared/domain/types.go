package domain

import "github.com/google/uuid"

type (
	BoardId  = uuid.UUID
	ColumnId = uuid.UUID
	TaskId   = uuid.UUID

	Title       = string
	Description = *string
	Order       = int
)
