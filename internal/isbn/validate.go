package isbn

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength    = errors.New("isbn must have 10 or 13 characters")
	ErrInvalidCharacter = errors.New("isbn contains an invalid character")
	ErrChecksumMismatch = errors.New("isbn check character does not match")
	ErrNotConvertible   = errors.New("isbn has no 10 character form")
)

// Kind identifies an ISBN form.
type Kind string

const (
	KindISBN13 Kind = "isbn13"
	KindISBN10 Kind = "isbn10"
)

// gs1Bookland is the only ISBN-13 prefix with an ISBN-10 equivalent.
const gs1Bookland = "978"

// CheckDigit13 returns the ISBN-13 check digit for a 12 digit payload.
func CheckDigit13(payload string) (byte, error) {
	if len(payload) != payload13 {
		return 0, fmt.Errorf("%w: payload has %d characters, want %d", ErrInvalidLength, len(payload), payload13)
	}
	if i := firstNonDigit(payload); i >= 0 {
		return 0, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, payload[i], i)
	}
	return checkChar13([]byte(payload)), nil
}

// CheckDigit10 returns the ISBN-10 check character for a 9 digit payload.
func CheckDigit10(payload string) (byte, error) {
	if len(payload) != payload10 {
		return 0, fmt.Errorf("%w: payload has %d characters, want %d", ErrInvalidLength, len(payload), payload10)
	}
	if i := firstNonDigit(payload); i >= 0 {
		return 0, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, payload[i], i)
	}
	return checkChar10([]byte(payload)), nil
}

// Validate reports whether s, after Normalize, is a well-formed ISBN-13 or
// ISBN-10 with a correct check character.
func Validate(s string) error {
	_, err := Detect(s)
	return err
}

// Detect validates s and returns its form.
func Detect(s string) (Kind, error) {
	id := Normalize(s)

	var (
		kind Kind
		want byte
		err  error
	)
	switch len(id) {
	case Length13:
		kind = KindISBN13
		want, err = CheckDigit13(id[:payload13])
	case Length10:
		kind = KindISBN10
		want, err = CheckDigit10(id[:payload10])
	default:
		return "", fmt.Errorf("%w: got %d", ErrInvalidLength, len(id))
	}
	if err != nil {
		return "", err
	}

	got := id[len(id)-1]
	if got != want {
		if !isDigit(got) && !(kind == KindISBN10 && got == checkX) {
			return "", fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, got, len(id)-1)
		}
		return "", fmt.Errorf("%w: got %c, want %c", ErrChecksumMismatch, got, want)
	}
	return kind, nil
}

// To13 converts a valid ISBN-10 to its 978-prefixed ISBN-13.
func To13(isbn10 string) (string, error) {
	id := Normalize(isbn10)
	kind, err := Detect(id)
	if err != nil {
		return "", err
	}
	if kind == KindISBN13 {
		return id, nil
	}
	payload := gs1Bookland + id[:payload10]
	return payload + string(checkChar13([]byte(payload))), nil
}

// To10 converts a valid 978-prefixed ISBN-13 to its ISBN-10 form.
// 979-prefixed identifiers have no ISBN-10 form and yield ErrNotConvertible.
func To10(isbn13 string) (string, error) {
	id := Normalize(isbn13)
	kind, err := Detect(id)
	if err != nil {
		return "", err
	}
	if kind == KindISBN10 {
		return id, nil
	}
	if id[:3] != gs1Bookland {
		return "", fmt.Errorf("%w: prefix %s", ErrNotConvertible, id[:3])
	}
	payload := id[3:payload13]
	return payload + string(checkChar10([]byte(payload))), nil
}

func firstNonDigit(s string) int {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return i
		}
	}
	return -1
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
