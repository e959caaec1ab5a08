// Package isbn generates, formats and checks International Standard Book
// Numbers in their 13 and 10 character forms.
//
// Generation and formatting never fail. Generated identifiers always carry a
// correct check character; Format only re-slices its input and performs no
// validation, use Validate for that.
package isbn

import (
	"math/rand/v2"
	"strings"
)

const (
	// Length13 is the length of an ISBN-13 identifier.
	Length13 = 13
	// Length10 is the length of an ISBN-10 identifier.
	Length10 = 10

	payload13 = Length13 - 1
	payload10 = Length10 - 1

	// checkX renders an ISBN-10 check value of 10.
	checkX = 'X'
)

// Source supplies uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Generator draws random payload digits from a Source. The zero value is not
// usable; construct one with NewGenerator.
//
// A Generator is safe for concurrent use when its Source is.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator drawing digits from src. A nil src uses the
// process-wide math/rand/v2 source, which is safe for concurrent use.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

var std = NewGenerator(nil)

// ISBN13 returns 12 random digits followed by their ISBN-13 check digit.
func (g *Generator) ISBN13() string {
	var b [Length13]byte
	g.fill(b[:payload13])
	b[payload13] = checkChar13(b[:payload13])
	return string(b[:])
}

// ISBN10 returns 9 random digits followed by their ISBN-10 check character,
// which is 'X' when the check value is 10.
func (g *Generator) ISBN10() string {
	var b [Length10]byte
	g.fill(b[:payload10])
	b[payload10] = checkChar10(b[:payload10])
	return string(b[:])
}

// Random returns an ISBN-13.
func (g *Generator) Random() string {
	return g.ISBN13()
}

func (g *Generator) fill(dst []byte) {
	for i := range dst {
		dst[i] = '0' + byte(g.src.IntN(10))
	}
}

// GenerateISBN13 returns a random ISBN-13 with a valid check digit.
func GenerateISBN13() string { return std.ISBN13() }

// GenerateISBN10 returns a random ISBN-10 with a valid check character.
func GenerateISBN10() string { return std.ISBN10() }

// GenerateRandom returns a random identifier. It prefers ISBN-13.
func GenerateRandom() string { return std.Random() }

// Format inserts the fixed hyphenation used for display:
//
//	13 characters: 978-0-306-40615-7
//	10 characters: 0-306-40615-2
//
// Input of any other length is returned unchanged. Characters are not
// inspected, so a 13 character string of letters is hyphenated as well.
func Format(id string) string {
	switch len(id) {
	case Length13:
		return id[0:3] + "-" + id[3:4] + "-" + id[4:7] + "-" + id[7:12] + "-" + id[12:13]
	case Length10:
		return id[0:1] + "-" + id[1:4] + "-" + id[4:9] + "-" + id[9:10]
	default:
		return id
	}
}

// Normalize removes hyphens and spaces and upper-cases a trailing 'x'.
// It undoes Format for well-formed identifiers.
func Normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return -1
		}
		return r
	}, s)
	if n := len(s); n > 0 && s[n-1] == 'x' {
		s = s[:n-1] + string(checkX)
	}
	return s
}

// checkChar13 expects ASCII digits.
func checkChar13(payload []byte) byte {
	sum := 0
	for i, c := range payload {
		w := 1
		if i%2 == 1 {
			w = 3
		}
		sum += int(c-'0') * w
	}
	return '0' + byte((10-sum%10)%10)
}

// checkChar10 picks the value c that makes sum + c a multiple of 11.
func checkChar10(payload []byte) byte {
	sum := 0
	for i, c := range payload {
		sum += int(c-'0') * (10 - i)
	}
	v := (11 - sum%11) % 11
	if v == 10 {
		return checkX
	}
	return '0' + byte(v)
}
