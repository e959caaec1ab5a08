package generator

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	snowflake, err := NewSnowflakeGenerator(7, DefaultSnowflakeEpoch)
	require.NoError(t, err)
	nano, err := NewNanoIDGenerator(DefaultBarcodeSize, DefaultBarcodeAlphabet)
	require.NoError(t, err)
	cuid, err := NewCUID2Generator(DefaultMemberCardLength)
	require.NoError(t, err)

	return NewRegistry(
		NewISBN13Generator(nil),
		NewISBN10Generator(nil),
		NewUUIDGenerator(),
		NewULIDGenerator(),
		NewKSUIDGenerator(),
		snowflake,
		nano,
		cuid,
	)
}

func TestRegistry(t *testing.T) {
	r := newTestRegistry(t)

	assert.Equal(t, []Scheme{
		SchemeCUID2, SchemeISBN10, SchemeISBN13, SchemeKSUID,
		SchemeNanoID, SchemeSnowflake, SchemeULID, SchemeUUID,
	}, r.Schemes())

	_, err := r.Get("ean8")
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestGenerators_RoundTrip(t *testing.T) {
	r := newTestRegistry(t)

	for _, scheme := range r.Schemes() {
		t.Run(string(scheme), func(t *testing.T) {
			g, err := r.Get(scheme)
			require.NoError(t, err)
			assert.Equal(t, scheme, g.Scheme())

			ids, err := Batch(g, 25)
			require.NoError(t, err)
			require.Len(t, ids, 25)

			for _, id := range ids {
				require.NoError(t, g.Validate(id), id)
				res, err := g.Parse(id)
				require.NoError(t, err, id)
				assert.Equal(t, scheme, res.Scheme)
				assert.NotZero(t, res.Length)
			}
		})
	}
}

func TestGenerators_RejectGarbage(t *testing.T) {
	r := newTestRegistry(t)

	for _, scheme := range r.Schemes() {
		g, err := r.Get(scheme)
		require.NoError(t, err)

		err = g.Validate("not-an-id!")
		assert.ErrorIs(t, err, ErrInvalidID, scheme)

		_, err = g.Parse("not-an-id!")
		assert.ErrorIs(t, err, ErrInvalidID, scheme)
	}
}

func TestISBNGenerator_Parse(t *testing.T) {
	res, err := NewISBN13Generator(nil).Parse("978-0-306-40615-7")
	require.NoError(t, err)
	assert.Equal(t, &ParseResult{
		Scheme:         SchemeISBN13,
		Length:         13,
		Normalized:     "9780306406157",
		Formatted:      "978-0-306-40615-7",
		Prefix:         "978",
		CheckCharacter: "7",
		ISBN13:         "9780306406157",
		ISBN10:         "0306406152",
	}, res)

	res, err = NewISBN13Generator(nil).Parse("9791000000008")
	require.NoError(t, err)
	assert.Equal(t, "979", res.Prefix)
	assert.Empty(t, res.ISBN10)

	res, err = NewISBN10Generator(nil).Parse("080442957X")
	require.NoError(t, err)
	assert.Equal(t, "0-804-42957-X", res.Formatted)
	assert.Equal(t, "X", res.CheckCharacter)
	assert.Equal(t, "9780804429573", res.ISBN13)
	assert.Equal(t, "978", res.Prefix)
}

func TestISBNGenerator_WrongKind(t *testing.T) {
	err := NewISBN10Generator(nil).Validate("9780306406157")
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Contains(t, err.Error(), "expected isbn10")

	err = NewISBN13Generator(nil).Validate("9780306406158")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestSnowflake_Sequence(t *testing.T) {
	clock := int64(DefaultSnowflakeEpoch + 5000)
	g, err := newSnowflake(3, DefaultSnowflakeEpoch, func() int64 { return clock })
	require.NoError(t, err)

	ids, err := Batch(g, 3)
	require.NoError(t, err)

	for i, id := range ids {
		res, err := g.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, clock, res.TimestampMs)
		assert.Equal(t, int64(3), res.MachineID)
		assert.Equal(t, int64(i), res.Sequence)
	}

	first, _ := strconv.ParseInt(ids[0], 10, 64)
	last, _ := strconv.ParseInt(ids[2], 10, 64)
	assert.Less(t, first, last)
}

func TestSnowflake_ClockBackwards(t *testing.T) {
	clock := int64(DefaultSnowflakeEpoch + 5000)
	g, err := newSnowflake(1, DefaultSnowflakeEpoch, func() int64 { return clock })
	require.NoError(t, err)

	_, err = g.Generate()
	require.NoError(t, err)

	clock -= 10
	_, err = g.Generate()
	assert.ErrorIs(t, err, errClockBackwards)
}

func TestSnowflake_Config(t *testing.T) {
	_, err := NewSnowflakeGenerator(1024, DefaultSnowflakeEpoch)
	assert.Error(t, err)
	_, err = NewSnowflakeGenerator(-1, DefaultSnowflakeEpoch)
	assert.Error(t, err)
}

func TestNanoID_Config(t *testing.T) {
	_, err := NewNanoIDGenerator(0, DefaultBarcodeAlphabet)
	assert.Error(t, err)
	_, err = NewNanoIDGenerator(10, "aaaa")
	assert.Error(t, err)

	g, err := NewNanoIDGenerator(8, "01")
	require.NoError(t, err)
	assert.ErrorIs(t, g.Validate("01012"), ErrInvalidID)
	assert.ErrorIs(t, g.Validate("01010102"), ErrInvalidID)
	assert.NoError(t, g.Validate("01010101"))
}

func TestCUID2_Config(t *testing.T) {
	_, err := NewCUID2Generator(1)
	assert.Error(t, err)
	_, err = NewCUID2Generator(33)
	assert.Error(t, err)
}
