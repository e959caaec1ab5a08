package generator

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// DefaultBarcodeSize and DefaultBarcodeAlphabet suit printed barcodes:
	// upper-case letters and digits without the easily confused I and O.
	DefaultBarcodeSize     = 12
	DefaultBarcodeAlphabet = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"
)

// NanoIDGenerator issues fixed-size random strings over a configurable
// alphabet.
type NanoIDGenerator struct {
	size     int
	alphabet string
}

// NewNanoIDGenerator validates size (1..256) and alphabet (at least two
// distinct characters).
func NewNanoIDGenerator(size int, alphabet string) (*NanoIDGenerator, error) {
	if size < 1 || size > 256 {
		return nil, fmt.Errorf("nanoid size must be between 1 and 256, got %d", size)
	}
	if distinct(alphabet) < 2 {
		return nil, fmt.Errorf("nanoid alphabet needs at least 2 distinct characters, got %q", alphabet)
	}
	return &NanoIDGenerator{size: size, alphabet: alphabet}, nil
}

func (g *NanoIDGenerator) Scheme() Scheme { return SchemeNanoID }

func (g *NanoIDGenerator) Generate() (string, error) {
	return gonanoid.Generate(g.alphabet, g.size)
}

func (g *NanoIDGenerator) Validate(id string) error {
	if n := len([]rune(id)); n != g.size {
		return invalid("expected length %d, got %d", g.size, n)
	}
	for i, r := range id {
		if !strings.ContainsRune(g.alphabet, r) {
			return invalid("character %q at position %d not in alphabet", r, i)
		}
	}
	return nil
}

func (g *NanoIDGenerator) Parse(id string) (*ParseResult, error) {
	if err := g.Validate(id); err != nil {
		return nil, err
	}
	return &ParseResult{
		Scheme:   SchemeNanoID,
		Length:   g.size,
		Alphabet: g.alphabet,
	}, nil
}

func distinct(s string) int {
	seen := make(map[rune]struct{}, len(s))
	for _, r := range s {
		seen[r] = struct{}{}
	}
	return len(seen)
}
