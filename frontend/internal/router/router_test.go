package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kebab-dev/kebab/frontend/internal/setup"
	"github.com/kebab-dev/kebab/shared/config"
	"github.com/kebab-dev/kebab/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend serves the two board endpoints the pages need.
func fakeBackend(t *testing.T, board domain.BoardWithColumns) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/boards", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]domain.Board{board.Board})
	})
	mux.HandleFunc("GET /api/boards/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != board.Id.String() {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Board not found"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(board)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSetupRouter(t *testing.T) {
	board := domain.BoardWithColumns{Board: domain.Board{Id: uuid.New(), Title: "Ops"}, Columns: []domain.ColumnWithTasks{}}
	backend := fakeBackend(t, board)

	deps, err := setup.SetupDependencies(&config.Config{Public: config.Public{
		Frontend: config.Frontend{ApiBaseURL: backend.URL, ApiTimeout: time.Second},
	}})
	require.NoError(t, err)
	r := SetupRouter(deps)

	tests := []struct {
		target string
		status int
		body   string
	}{
		{"/", http.StatusOK, "Ops"},
		{"/boards/" + board.Id.String(), http.StatusOK, "This board has no columns."},
		{"/boards/" + uuid.NewString(), http.StatusNotFound, "Not found"},
		{"/missing/page", http.StatusNotFound, "Not found"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.status, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.body)
			assert.Contains(t, rr.Header().Get("Content-Security-Policy"), "form-action 'self'")
		})
	}
}
