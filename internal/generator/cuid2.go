package generator

import (
	"fmt"

	"github.com/nrednav/cuid2"
)

const DefaultMemberCardLength = 24

// CUID2Generator issues collision-resistant IDs.
type CUID2Generator struct {
	length int
	next   func() string
}

// NewCUID2Generator creates a generator for IDs of the given length (2..32).
func NewCUID2Generator(length int) (*CUID2Generator, error) {
	if length < 2 || length > 32 {
		return nil, fmt.Errorf("cuid2 length must be between 2 and 32, got %d", length)
	}
	next, err := cuid2.Init(cuid2.WithLength(length))
	if err != nil {
		return nil, fmt.Errorf("init cuid2: %w", err)
	}
	return &CUID2Generator{length: length, next: next}, nil
}

func (g *CUID2Generator) Scheme() Scheme { return SchemeCUID2 }

func (g *CUID2Generator) Generate() (string, error) {
	return g.next(), nil
}

func (g *CUID2Generator) Validate(id string) error {
	if len(id) != g.length {
		return invalid("expected length %d, got %d", g.length, len(id))
	}
	if !cuid2.IsCuid(id) {
		return invalid("not a cuid2")
	}
	return nil
}

func (g *CUID2Generator) Parse(id string) (*ParseResult, error) {
	if err := g.Validate(id); err != nil {
		return nil, err
	}
	return &ParseResult{Scheme: SchemeCUID2, Length: len(id)}, nil
}
