package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/weiawesome/library-id/internal/domain"
	"github.com/weiawesome/library-id/internal/generator"
	"github.com/weiawesome/library-id/internal/isbn"
	"github.com/weiawesome/library-id/internal/metrics"
	"github.com/weiawesome/library-id/pkg/log"
)

var (
	ErrInvalidCount = fmt.Errorf("count must be between 1 and %d", domain.MaxBatchSize)
	ErrNotISBN      = errors.New("scheme is not an ISBN form")
	ErrInvalidISBN  = errors.New("invalid isbn")
)

// identifierServiceImpl implements IdentifierService.
type identifierServiceImpl struct {
	registry *generator.Registry
	metrics  *metrics.Metrics
}

// NewIdentifierService creates a new identifier service.
func NewIdentifierService(registry *generator.Registry, m *metrics.Metrics) IdentifierService {
	return &identifierServiceImpl{registry: registry, metrics: m}
}

func (s *identifierServiceImpl) Schemes(ctx context.Context) []generator.Scheme {
	return s.registry.Schemes()
}

// Generate issues one identifier. hyphenate only affects ISBN schemes.
func (s *identifierServiceImpl) Generate(ctx context.Context, scheme generator.Scheme, hyphenate bool) (*domain.IdentifierResponse, error) {
	gen, err := s.registry.Get(scheme)
	if err != nil {
		return nil, err
	}

	id, err := gen.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s: %w", scheme, err)
	}
	s.metrics.ObserveGenerated(string(scheme), 1)

	resp := &domain.IdentifierResponse{Scheme: scheme, ID: id}
	if hyphenate && isISBN(scheme) {
		resp.Formatted = isbn.Format(id)
	}
	return resp, nil
}

func (s *identifierServiceImpl) GenerateBatch(ctx context.Context, scheme generator.Scheme, count int, hyphenate bool) (*domain.BatchResponse, error) {
	if count < 1 || count > domain.MaxBatchSize {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCount, count)
	}

	gen, err := s.registry.Get(scheme)
	if err != nil {
		return nil, err
	}

	ids, err := generator.Batch(gen, count)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %d %s: %w", count, scheme, err)
	}
	s.metrics.ObserveGenerated(string(scheme), len(ids))

	l := log.Ctx(ctx)
	l.Debug().Str(log.FieldScheme, string(scheme)).Int(log.FieldCount, len(ids)).Msg("batch generated")

	resp := &domain.BatchResponse{Scheme: scheme, IDs: ids, Count: len(ids)}
	if hyphenate && isISBN(scheme) {
		resp.Formatted = make([]string, len(ids))
		for i, id := range ids {
			resp.Formatted[i] = isbn.Format(id)
		}
	}
	return resp, nil
}

// Validate reports an invalid identifier in the response, not as an error.
func (s *identifierServiceImpl) Validate(ctx context.Context, scheme generator.Scheme, id string) (*domain.ValidationResponse, error) {
	gen, err := s.registry.Get(scheme)
	if err != nil {
		return nil, err
	}

	resp := &domain.ValidationResponse{Scheme: scheme, ID: id, Valid: true}
	if err := gen.Validate(id); err != nil {
		resp.Valid = false
		resp.Reason = err.Error()
	}
	s.metrics.ObserveValidation(string(scheme), resp.Valid)
	return resp, nil
}

func (s *identifierServiceImpl) Parse(ctx context.Context, scheme generator.Scheme, id string) (*generator.ParseResult, error) {
	gen, err := s.registry.Get(scheme)
	if err != nil {
		return nil, err
	}
	return gen.Parse(id)
}

// Format applies ISBN hyphenation. Input that is not 10 or 13 characters long
// comes back unchanged.
func (s *identifierServiceImpl) Format(ctx context.Context, id string) *domain.FormatResponse {
	return &domain.FormatResponse{ID: id, Formatted: isbn.Format(id)}
}

func (s *identifierServiceImpl) Convert(ctx context.Context, id string, to generator.Scheme) (*domain.ConvertResponse, error) {
	var (
		out string
		err error
	)
	switch to {
	case generator.SchemeISBN13:
		out, err = isbn.To13(id)
	case generator.SchemeISBN10:
		out, err = isbn.To10(id)
	default:
		return nil, fmt.Errorf("%w: %q", ErrNotISBN, to)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidISBN, err)
	}
	return &domain.ConvertResponse{From: id, To: out, Formatted: isbn.Format(out)}, nil
}

func isISBN(s generator.Scheme) bool {
	return s == generator.SchemeISBN13 || s == generator.SchemeISBN10
}
