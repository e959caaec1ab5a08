package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/weiawesome/library-id/internal/domain"
	"github.com/weiawesome/library-id/pkg/log"
)

// ErrBookNotFound is matched by an *APIError with status 404.
var ErrBookNotFound = errors.New("book not found")

// maxErrorBody caps how much of a non-JSON error body is kept.
const maxErrorBody = 512

// APIError is a non-2xx answer from the catalog backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog backend: %d %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrBookNotFound && e.StatusCode == http.StatusNotFound
}

// CatalogClient talks JSON to the books endpoints of the catalog backend.
type CatalogClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewCatalogClient creates a client for baseURL (for example
// "https://catalog.example.org/api"). A non-empty token is sent as a bearer
// token on every request.
func NewCatalogClient(baseURL, token string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// CreateBook creates a book record and returns it as stored.
func (c *CatalogClient) CreateBook(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	var out bookEnvelope
	if err := c.do(ctx, http.MethodPost, "/books", book, &out); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return out.book(), nil
}

// ListBooks returns every book record.
func (c *CatalogClient) ListBooks(ctx context.Context) ([]domain.Book, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/books", nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	var books []domain.Book
	if err := json.Unmarshal(raw, &books); err == nil {
		return books, nil
	}
	var wrapped struct {
		Books []domain.Book `json:"books"`
		Data  []domain.Book `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode books: %w", err)
	}
	if wrapped.Books != nil {
		return wrapped.Books, nil
	}
	return wrapped.Data, nil
}

// GetBook returns one book record.
func (c *CatalogClient) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	var out bookEnvelope
	if err := c.do(ctx, http.MethodGet, "/books/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get book %s: %w", id, err)
	}
	return out.book(), nil
}

// UpdateBook replaces a book record.
func (c *CatalogClient) UpdateBook(ctx context.Context, id string, book *domain.Book) (*domain.Book, error) {
	var out bookEnvelope
	if err := c.do(ctx, http.MethodPut, "/books/"+url.PathEscape(id), book, &out); err != nil {
		return nil, fmt.Errorf("failed to update book %s: %w", id, err)
	}
	return out.book(), nil
}

// DeleteBook removes a book record.
func (c *CatalogClient) DeleteBook(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/books/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete book %s: %w", id, err)
	}
	return nil
}

// bookEnvelope accepts a bare record as well as {"book": ...} or {"data": ...}.
type bookEnvelope struct {
	domain.Book
	Wrapped *domain.Book `json:"book"`
	Data    *domain.Book `json:"data"`
}

func (e *bookEnvelope) book() *domain.Book {
	switch {
	case e.Wrapped != nil:
		return e.Wrapped
	case e.Data != nil:
		return e.Data
	default:
		b := e.Book
		return &b
	}
}

func (c *CatalogClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	target := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if id := log.RequestID(ctx); id != "" {
		req.Header.Set(log.HeaderRequestID, id)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	l := log.Ctx(ctx)
	l.Debug().
		Str(log.FieldMethod, method).
		Str(log.FieldBackendURL, target).
		Int(log.FieldBackendStatus, resp.StatusCode).
		Float64(log.FieldLatency, float64(time.Since(start).Milliseconds())).
		Msg("catalog backend call")

	if !isJSON(resp.Header.Get("Content-Type")) {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 && out == nil {
			return nil
		}
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		l.Warn().Int(log.FieldBackendStatus, resp.StatusCode).Str("body", string(text)).Msg("non-JSON response from catalog backend")
		return &APIError{StatusCode: resp.StatusCode, Message: "non-JSON response"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Message == "" {
			e.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: e.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == "application/json"
}
