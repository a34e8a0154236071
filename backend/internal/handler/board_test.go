package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kebab-dev/kebab/backend/internal/utils"
	"github.com/kebab-dev/kebab/shared/domain"
	internal_errors "github.com/kebab-dev/kebab/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func TestCreateBoardHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		id := uuid.New()
		router := newTestRouter(&MockBoardService{
			CreateFunc: func(ctx context.Context, title string) (*domain.Board, error) {
				assert.Equal(t, "Roadmap", title)
				return &domain.Board{Id: id, Title: title, CreatedAt: testTime, UpdatedAt: testTime}, nil
			},
		})

		rr := serve(t, router, createRequest(t, http.MethodPost, "/api/boards", []byte(`{"title":"Roadmap"}`)))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		var got map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, id.String(), got["id"])
		assert.Equal(t, "Roadmap", got["title"])
		assert.Equal(t, "2024-01-02T03:04:05Z", got["createdAt"])
		assert.Equal(t, "2024-01-02T03:04:05Z", got["updatedAt"])
	})

	t.Run("missing title is rejected before the service", func(t *testing.T) {
		router := newTestRouter(&MockBoardService{})

		rr := serve(t, router, createRequest(t, http.MethodPost, "/api/boards", []byte(`{}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":[{"field":"title","message":"is required"}]}`, rr.Body.String())
	})

	t.Run("malformed json", func(t *testing.T) {
		router := newTestRouter(&MockBoardService{})

		rr := serve(t, router, createRequest(t, http.MethodPost, "/api/boards", []byte(`{"title":`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Body is invalid json"}`, rr.Body.String())
	})

	t.Run("title length is checked by the real validator", func(t *testing.T) {
		// wire the actual validator through a pass-through service
		v := utils.New()
		router := newTestRouter(&MockBoardService{
			CreateFunc: func(ctx context.Context, title string) (*domain.Board, error) {
				if err := v.Title(title); err != nil {
					return nil, err
				}
				return &domain.Board{Id: uuid.New(), Title: title}, nil
			},
		})

		rr := serve(t, router, createRequest(t, http.MethodPost, "/api/boards", []byte(`{"title":""}`)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), `"field":"title"`)

		long, _ := json.Marshal(map[string]string{"title": strings.Repeat("x", 256)})
		rr = serve(t, router, createRequest(t, http.MethodPost, "/api/boards", long))
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		atMax, _ := json.Marshal(map[string]string{"title": strings.Repeat("x", 255)})
		rr = serve(t, router, createRequest(t, http.MethodPost, "/api/boards", atMax))
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("store failure is a generic 500", func(t *testing.T) {
		router := newTestRouter(&MockBoardService{
			CreateFunc: func(ctx context.Context, title string) (*domain.Board, error) {
				return nil, errors.New("pq: relation \"boards\" does not exist")
			},
		})

		rr := serve(t, router, createRequest(t, http.MethodPost, "/api/boards", []byte(`{"title":"x"}`)))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
		assert.NotContains(t, rr.Body.String(), "pq")
	})

	t.Run("request cancellation does not reach the service", func(t *testing.T) {
		router := newTestRouter(&MockBoardService{
			CreateFunc: func(ctx context.Context, title string) (*domain.Board, error) {
				assert.NoError(t, ctx.Err())
				return &domain.Board{Id: uuid.New(), Title: title}, nil
			},
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := createRequest(t, http.MethodPost, "/api/boards", []byte(`{"title":"x"}`)).WithContext(ctx)

		rr := serve(t, router, req)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})
}

func TestGetBoardsHandler(t *testing.T) {
	t.Run("list in service order", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		router := newTestRouter(&MockBoardService{
			ListFunc: func(ctx context.Context) ([]domain.Board, error) {
				return []domain.Board{{Id: a, Title: "A"}, {Id: b, Title: "B"}}, nil
			},
		})

		rr := serve(t, router, createRequest(t, http.MethodGet, "/api/boards", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var got []domain.Board
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, a, got[0].Id)
		assert.Equal(t, b, got[1].Id)
	})

	t.Run("empty list is an empty array", func(t *testing.T) {
		router := newTestRouter(&MockBoardService{
			ListFunc: func(ctx context.Context) ([]domain.Board, error) { return []domain.Board{}, nil },
		})

		rr := serve(t, router, createRequest(t, http.MethodGet, "/api/boards", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]\n", rr.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		router := newTestRouter(&MockBoardService{
			ListFunc: func(ctx context.Context) ([]domain.Board, error) { return nil, errors.New("timeout") },
		})

		rr := serve(t, router, createRequest(t, http.MethodGet, "/api/boards", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
	})
}

func TestGetBoardHandler(t *testing.T) {
	id := uuid.New()
	columnId := uuid.New()
	v := utils.New()
	router := newTestRouter(&MockBoardService{
		GetFunc: func(ctx context.Context, rawId string) (*domain.BoardWithColumns, error) {
			parsed, err := v.Id(rawId)
			if err != nil {
				return nil, err
			}
			if parsed != id {
				return nil, internal_errors.NotFound("Board")
			}
			return &domain.BoardWithColumns{
				Board: domain.Board{Id: id, Title: "Board"},
				Columns: []domain.ColumnWithTasks{{
					Column: domain.Column{Id: columnId, BoardId: id, Title: "To Do"},
					Tasks:  []domain.Task{{Id: uuid.New(), ColumnId: columnId, Title: "Task"}},
				}},
			}, nil
		},
	})

	t.Run("found", func(t *testing.T) {
		rr := serve(t, router, createRequest(t, http.MethodGet, "/api/boards/"+id.String(), nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var got struct {
			Id      string `json:"id"`
			Columns []struct {
				Id    string `json:"id"`
				Tasks []struct {
					Title       string  `json:"title"`
					Description *string `json:"description"`
				} `json:"tasks"`
			} `json:"columns"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, id.String(), got.Id)
		require.Len(t, got.Columns, 1)
		assert.Equal(t, columnId.String(), got.Columns[0].Id)
		require.Len(t, got.Columns[0].Tasks, 1)
		assert.Nil(t, got.Columns[0].Tasks[0].Description)
		assert.Contains(t, rr.Body.String(), `"description":null`)
	})

	t.Run("not found", func(t *testing.T) {
		rr := serve(t, router, createRequest(t, http.MethodGet, "/api/boards/"+uuid.Nil.String(), nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Board not found"}`, rr.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		rr := serve(t, router, createRequest(t, http.MethodGet, "/api/boards/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":[{"field":"id","message":"must be a valid UUID"}]}`, rr.Body.String())
	})
}

func TestDeleteBoardHandler(t *testing.T) {
	id := uuid.New()
	v := utils.New()
	router := newTestRouter(&MockBoardService{
		DeleteFunc: func(ctx context.Context, rawId string) error {
			parsed, err := v.Id(rawId)
			if err != nil {
				return err
			}
			if parsed != id {
				return internal_errors.NotFound("Board")
			}
			return nil
		},
	})

	t.Run("deleted", func(t *testing.T) {
		rr := serve(t, router, createRequest(t, http.MethodDelete, "/api/boards/"+id.String(), nil))

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		rr := serve(t, router, createRequest(t, http.MethodDelete, "/api/boards/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Board not found"}`, rr.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		rr := serve(t, router, createRequest(t, http.MethodDelete, "/api/boards/123", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
