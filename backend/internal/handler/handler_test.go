package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kebab-dev/kebab/shared/config"
	"github.com/kebab-dev/kebab/shared/domain"
)

// --- Mock for BoardService ---

type MockBoardService struct {
	ListFunc   func(ctx context.Context) ([]domain.Board, error)
	GetFunc    func(ctx context.Context, rawId string) (*domain.BoardWithColumns, error)
	CreateFunc func(ctx context.Context, title string) (*domain.Board, error)
	DeleteFunc func(ctx context.Context, rawId string) error
}

func (m *MockBoardService) List(ctx context.Context) ([]domain.Board, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errors.New("List not mocked")
}

func (m *MockBoardService) Get(ctx context.Context, rawId string) (*domain.BoardWithColumns, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, rawId)
	}
	return nil, errors.New("Get not mocked")
}

func (m *MockBoardService) Create(ctx context.Context, title string) (*domain.Board, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, title)
	}
	return nil, errors.New("Create not mocked")
}

func (m *MockBoardService) Delete(ctx context.Context, rawId string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, rawId)
	}
	return errors.New("Delete not mocked")
}

func createRequest(t *testing.T, method, url string, body []byte) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, url, bytes.NewBuffer(body))
}

// newTestRouter mounts the board routes the same way the api router does,
// so chi URL params are populated.
func newTestRouter(board *MockBoardService) http.Handler {
	h := New(board, &MockHealthChecker{}, &config.Config{})
	r := chi.NewRouter()
	r.Get("/api/boards", h.GetBoards)
	r.Post("/api/boards", h.CreateBoard)
	r.Get("/api/boards/{id}", h.GetBoard)
	r.Delete("/api/boards/{id}", h.DeleteBoard)
	return r
}

func serve(t *testing.T, router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
