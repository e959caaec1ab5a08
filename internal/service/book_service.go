package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/weiawesome/library-id/internal/domain"
	"github.com/weiawesome/library-id/internal/isbn"
	"github.com/weiawesome/library-id/internal/metrics"
	"github.com/weiawesome/library-id/pkg/log"
)

var (
	ErrCatalogUnavailable = errors.New("catalog backend is not configured")
	ErrInvalidCopies      = errors.New("available copies exceed total copies")
)

// bookServiceImpl implements BookService.
type bookServiceImpl struct {
	isbns   *isbn.Generator
	backend CatalogBackend
	metrics *metrics.Metrics
}

// NewBookService creates the book-creation workflow. backend may be nil, in
// which case RegisterBook returns ErrCatalogUnavailable.
func NewBookService(isbns *isbn.Generator, backend CatalogBackend, m *metrics.Metrics) BookService {
	if isbns == nil {
		isbns = isbn.NewGenerator(nil)
	}
	return &bookServiceImpl{isbns: isbns, backend: backend, metrics: m}
}

// RegisterBook assigns an ISBN when the request has none and hands the record
// to the catalog backend. A supplied ISBN must validate and is stored without
// hyphens.
func (s *bookServiceImpl) RegisterBook(ctx context.Context, req *domain.RegisterBookRequest) (*domain.RegisterBookResponse, error) {
	if s.backend == nil {
		return nil, ErrCatalogUnavailable
	}

	id, generated := isbn.Normalize(req.ISBN), false
	if id == "" {
		id, generated = s.isbns.Random(), true
		s.metrics.ObserveGenerated(string(isbn.KindISBN13), 1)
	} else if err := isbn.Validate(id); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidISBN, err)
	}

	copies := req.TotalCopies
	if copies < 1 {
		copies = 1
	}

	book := &domain.Book{
		Title:           req.Title,
		Author:          req.Author,
		Genre:           req.Genre,
		Description:     req.Description,
		ISBN:            id,
		TotalCopies:     copies,
		AvailableCopies: copies,
		CoverImage:      req.CoverImage,
	}

	created, err := s.backend.CreateBook(ctx, book)
	s.metrics.ObserveBook(err)
	if err != nil {
		return nil, err
	}
	if created.ISBN == "" {
		created.ISBN = id
	}

	l := log.Ctx(ctx)
	l.Info().
		Str(log.FieldISBN, created.ISBN).
		Str(log.FieldID, created.ID).
		Bool("isbn_generated", generated).
		Msg("book registered")

	return &domain.RegisterBookResponse{
		Book:          created,
		ISBNFormatted: isbn.Format(created.ISBN),
		ISBNGenerated: generated,
	}, nil
}

func (s *bookServiceImpl) ListBooks(ctx context.Context) (*domain.BookListResponse, error) {
	if s.backend == nil {
		return nil, ErrCatalogUnavailable
	}

	books, err := s.backend.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	resp := &domain.BookListResponse{Books: make([]domain.BookResponse, len(books)), Count: len(books)}
	for i := range books {
		resp.Books[i] = *bookResponse(&books[i])
	}
	return resp, nil
}

func (s *bookServiceImpl) GetBook(ctx context.Context, id string) (*domain.BookResponse, error) {
	if s.backend == nil {
		return nil, ErrCatalogUnavailable
	}

	book, err := s.backend.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	return bookResponse(book), nil
}

// UpdateBook replaces a record. The ISBN must validate and is stored without
// hyphens, as on registration.
func (s *bookServiceImpl) UpdateBook(ctx context.Context, id string, req *domain.UpdateBookRequest) (*domain.BookResponse, error) {
	if s.backend == nil {
		return nil, ErrCatalogUnavailable
	}

	isbnID := isbn.Normalize(req.ISBN)
	if err := isbn.Validate(isbnID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidISBN, err)
	}
	if req.AvailableCopies > req.TotalCopies {
		return nil, fmt.Errorf("%w: %d > %d", ErrInvalidCopies, req.AvailableCopies, req.TotalCopies)
	}

	updated, err := s.backend.UpdateBook(ctx, id, &domain.Book{
		ID:              id,
		Title:           req.Title,
		Author:          req.Author,
		Genre:           req.Genre,
		Description:     req.Description,
		ISBN:            isbnID,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.AvailableCopies,
		CoverImage:      req.CoverImage,
	})
	if err != nil {
		return nil, err
	}
	if updated.ISBN == "" {
		updated.ISBN = isbnID
	}

	l := log.Ctx(ctx)
	l.Info().Str(log.FieldID, id).Str(log.FieldISBN, updated.ISBN).Msg("book updated")
	return bookResponse(updated), nil
}

func (s *bookServiceImpl) DeleteBook(ctx context.Context, id string) error {
	if s.backend == nil {
		return ErrCatalogUnavailable
	}
	if err := s.backend.DeleteBook(ctx, id); err != nil {
		return err
	}

	l := log.Ctx(ctx)
	l.Info().Str(log.FieldID, id).Msg("book deleted")
	return nil
}

// bookResponse leaves ISBNFormatted as stored when the record's ISBN is not
// 10 or 13 characters long.
func bookResponse(b *domain.Book) *domain.BookResponse {
	return &domain.BookResponse{Book: b, ISBNFormatted: isbn.Format(b.ISBN)}
}
