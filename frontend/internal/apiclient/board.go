package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kebab-dev/kebab/shared/api"
	"github.com/kebab-dev/kebab/shared/domain"
)

// === Board Methods ===

func (c *APIClient) GetBoards(ctx context.Context) ([]domain.Board, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/boards", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}
	boards := []domain.Board{}
	if err := json.NewDecoder(resp.Body).Decode(&boards); err != nil {
		return nil, fmt.Errorf("cannot decode boards response: %w", err)
	}
	return boards, nil
}

func (c *APIClient) GetBoard(ctx context.Context, id string) (*api.BoardDetailResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/boards/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}
	var board api.BoardDetailResponse
	if err := json.NewDecoder(resp.Body).Decode(&board); err != nil {
		return nil, fmt.Errorf("cannot decode board response: %w", err)
	}
	return &board, nil
}

func (c *APIClient) CreateBoard(ctx context.Context, title string) (*api.BoardResponse, error) {
	jsonBody, err := json.Marshal(api.CreateBoardRequest{Title: &title})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal board data: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/boards", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, decodeError(resp)
	}
	var board api.BoardResponse
	if err := json.NewDecoder(resp.Body).Decode(&board); err != nil {
		return nil, fmt.Errorf("cannot decode created board: %w", err)
	}
	return &board, nil
}

func (c *APIClient) DeleteBoard(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/api/boards/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return decodeError(resp)
	}
	return nil
}
