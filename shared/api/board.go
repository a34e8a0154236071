package api

import (
	"time"

	"github.com/kebab-dev/kebab/shared/domain"
)

// Request DTOs

// Title is a pointer so a missing field ("required") can be told apart
// from an empty one (too short).
type CreateBoardRequest struct {
	Title *string `json:"title" validate:"required"`
}

// Response DTOs

// BoardResponse is the board summary used by list and create.
type BoardResponse = domain.Board

// BoardDetailResponse is a board with nested columns and tasks.
type BoardDetailResponse = domain.BoardWithColumns

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
