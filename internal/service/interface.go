package service

import (
	"context"

	"github.com/weiawesome/library-id/internal/domain"
	"github.com/weiawesome/library-id/internal/generator"
)

// IdentifierService defines identifier issuing and inspection.
type IdentifierService interface {
	Schemes(ctx context.Context) []generator.Scheme
	Generate(ctx context.Context, scheme generator.Scheme, hyphenate bool) (*domain.IdentifierResponse, error)
	GenerateBatch(ctx context.Context, scheme generator.Scheme, count int, hyphenate bool) (*domain.BatchResponse, error)
	Validate(ctx context.Context, scheme generator.Scheme, id string) (*domain.ValidationResponse, error)
	Parse(ctx context.Context, scheme generator.Scheme, id string) (*generator.ParseResult, error)
	Format(ctx context.Context, id string) *domain.FormatResponse
	Convert(ctx context.Context, id string, to generator.Scheme) (*domain.ConvertResponse, error)
}

// BookService defines the book-creation workflow and the catalog records it
// maintains.
type BookService interface {
	RegisterBook(ctx context.Context, req *domain.RegisterBookRequest) (*domain.RegisterBookResponse, error)
	ListBooks(ctx context.Context) (*domain.BookListResponse, error)
	GetBook(ctx context.Context, id string) (*domain.BookResponse, error)
	UpdateBook(ctx context.Context, id string, req *domain.UpdateBookRequest) (*domain.BookResponse, error)
	DeleteBook(ctx context.Context, id string) error
}

// CatalogBackend stores book records. *client.CatalogClient implements it.
type CatalogBackend interface {
	CreateBook(ctx context.Context, book *domain.Book) (*domain.Book, error)
	ListBooks(ctx context.Context) ([]domain.Book, error)
	GetBook(ctx context.Context, id string) (*domain.Book, error)
	UpdateBook(ctx context.Context, id string, book *domain.Book) (*domain.Book, error)
	DeleteBook(ctx context.Context, id string) error
}
