package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/library-id/internal/domain"
	"github.com/weiawesome/library-id/pkg/log"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *CatalogClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewCatalogClient(srv.URL+"/api", "secret-token", 2*time.Second)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestCreateBook(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/books", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "req-1", r.Header.Get(log.HeaderRequestID))
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var in domain.Book
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = "b1"
		in.AvailableCopies = in.TotalCopies
		writeJSON(w, http.StatusCreated, map[string]any{"message": "created", "book": in})
	})

	ctx := log.WithRequestID(context.Background(), "req-1")
	got, err := c.CreateBook(ctx, &domain.Book{Title: "Dune", Author: "Frank Herbert", ISBN: "9780306406157", TotalCopies: 2})
	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, 2, got.AvailableCopies)
}

func TestGetBook_BareRecord(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/books/b1", r.URL.Path)
		writeJSON(w, http.StatusOK, domain.Book{ID: "b1", Title: "Dune"})
	})

	got, err := c.GetBook(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)
}

func TestListBooks(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{name: "array", body: []domain.Book{{ID: "a"}, {ID: "b"}}},
		{name: "wrapped", body: map[string]any{"books": []domain.Book{{ID: "a"}, {ID: "b"}}}},
		{name: "data", body: map[string]any{"data": []domain.Book{{ID: "a"}, {ID: "b"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, tt.body)
			})
			got, err := c.ListBooks(context.Background())
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "b", got[1].ID)
		})
	}
}

func TestUpdateAndDeleteBook(t *testing.T) {
	var methods []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": domain.Book{ID: "b1", Title: "Dune Messiah"}})
	})

	got, err := c.UpdateBook(context.Background(), "b1", &domain.Book{Title: "Dune Messiah"})
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", got.Title)

	require.NoError(t, c.DeleteBook(context.Background(), "b1"))
	assert.Equal(t, []string{http.MethodPut, http.MethodDelete}, methods)
}

func TestErrors(t *testing.T) {
	t.Run("json message", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusConflict, map[string]string{"message": "ISBN already exists"})
		})
		_, err := c.CreateBook(context.Background(), &domain.Book{Title: "x"})

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
		assert.Equal(t, "ISBN already exists", apiErr.Message)
	})

	t.Run("not found", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]string{})
		})
		_, err := c.GetBook(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrBookNotFound)
	})

	t.Run("non-json", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		})
		_, err := c.ListBooks(context.Background())

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	})

	t.Run("canceled", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []domain.Book{})
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := c.ListBooks(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
