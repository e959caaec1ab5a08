package generator

import (
	"errors"

	"github.com/weiawesome/library-id/internal/isbn"
)

// ISBNGenerator issues ISBN-13 or ISBN-10 book identifiers.
type ISBNGenerator struct {
	kind isbn.Kind
	gen  *isbn.Generator
}

// NewISBN13Generator returns the default book identifier generator. A nil gen
// uses the package-level random source.
func NewISBN13Generator(gen *isbn.Generator) *ISBNGenerator {
	return newISBNGenerator(isbn.KindISBN13, gen)
}

// NewISBN10Generator returns a generator for legacy 10 character ISBNs.
func NewISBN10Generator(gen *isbn.Generator) *ISBNGenerator {
	return newISBNGenerator(isbn.KindISBN10, gen)
}

func newISBNGenerator(kind isbn.Kind, gen *isbn.Generator) *ISBNGenerator {
	if gen == nil {
		gen = isbn.NewGenerator(nil)
	}
	return &ISBNGenerator{kind: kind, gen: gen}
}

func (g *ISBNGenerator) Scheme() Scheme { return Scheme(g.kind) }

func (g *ISBNGenerator) Generate() (string, error) {
	if g.kind == isbn.KindISBN10 {
		return g.gen.ISBN10(), nil
	}
	return g.gen.ISBN13(), nil
}

// Validate accepts hyphenated input but requires the generator's own form.
func (g *ISBNGenerator) Validate(id string) error {
	kind, err := isbn.Detect(id)
	if err != nil {
		return invalid("%v", err)
	}
	if kind != g.kind {
		return invalid("expected %s, got %s", g.kind, kind)
	}
	return nil
}

func (g *ISBNGenerator) Parse(id string) (*ParseResult, error) {
	if err := g.Validate(id); err != nil {
		return nil, err
	}

	norm := isbn.Normalize(id)
	res := &ParseResult{
		Scheme:         g.Scheme(),
		Length:         len(norm),
		Normalized:     norm,
		Formatted:      isbn.Format(norm),
		CheckCharacter: norm[len(norm)-1:],
	}

	var err error
	if g.kind == isbn.KindISBN13 {
		res.Prefix = norm[:3]
		res.ISBN13 = norm
		res.ISBN10, err = isbn.To10(norm)
		if errors.Is(err, isbn.ErrNotConvertible) {
			err = nil
		}
	} else {
		res.ISBN10 = norm
		res.ISBN13, err = isbn.To13(norm)
		if err == nil {
			res.Prefix = res.ISBN13[:3]
		}
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}
