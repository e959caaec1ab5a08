package isbn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDigit(t *testing.T) {
	d, err := CheckDigit13("978030640615")
	require.NoError(t, err)
	assert.Equal(t, byte('7'), d)

	d, err = CheckDigit10("080442957")
	require.NoError(t, err)
	assert.Equal(t, byte('X'), d)

	_, err = CheckDigit13("97803064061")
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = CheckDigit10("03064O615")
	assert.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Kind
		wantErr error
	}{
		{name: "isbn13", in: "9780306406157", want: KindISBN13},
		{name: "isbn13 hyphenated", in: "978-0-306-40615-7", want: KindISBN13},
		{name: "isbn10", in: "0306406152", want: KindISBN10},
		{name: "isbn10 lower x", in: "0-804-42957-x", want: KindISBN10},
		{name: "bad isbn13 check", in: "9780306406158", wantErr: ErrChecksumMismatch},
		{name: "bad isbn10 check", in: "0306406153", wantErr: ErrChecksumMismatch},
		{name: "x on isbn13", in: "978030640615X", wantErr: ErrInvalidCharacter},
		{name: "letters", in: "ABCDEFGHIJKLM", wantErr: ErrInvalidCharacter},
		{name: "x inside payload", in: "03064X6152", wantErr: ErrInvalidCharacter},
		{name: "short", in: "12345", wantErr: ErrInvalidLength},
		{name: "empty", in: "", wantErr: ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvert(t *testing.T) {
	got, err := To13("0-306-40615-2")
	require.NoError(t, err)
	assert.Equal(t, "9780306406157", got)

	got, err = To13("080442957X")
	require.NoError(t, err)
	assert.Equal(t, "9780804429573", got)

	got, err = To10("9780306406157")
	require.NoError(t, err)
	assert.Equal(t, "0306406152", got)

	got, err = To10("9780804429573")
	require.NoError(t, err)
	assert.Equal(t, "080442957X", got)

	got, err = To13("9780306406157")
	require.NoError(t, err)
	assert.Equal(t, "9780306406157", got)

	_, err = To10("9791000000008")
	assert.ErrorIs(t, err, ErrNotConvertible)

	_, err = To13("0306406153")
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestConvert_RoundTrip(t *testing.T) {
	for i := 0; i < 500; i++ {
		id10 := GenerateISBN10()
		id13, err := To13(id10)
		require.NoError(t, err)
		require.NoError(t, Validate(id13))

		back, err := To10(id13)
		require.NoError(t, err)
		assert.Equal(t, id10, back)
	}
}
