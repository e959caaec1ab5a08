package generator

import (
	"encoding/hex"

	"github.com/oklog/ulid/v2"
)

// ULIDGenerator issues ULIDs. IDs created within the same millisecond are
// monotonic, so records keyed by them sort in creation order.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

func (g *ULIDGenerator) Scheme() Scheme { return SchemeULID }

func (g *ULIDGenerator) Generate() (string, error) {
	return ulid.Make().String(), nil
}

func (g *ULIDGenerator) Validate(id string) error {
	_, err := g.parse(id)
	return err
}

func (g *ULIDGenerator) Parse(id string) (*ParseResult, error) {
	u, err := g.parse(id)
	if err != nil {
		return nil, err
	}
	return &ParseResult{
		Scheme:        SchemeULID,
		Length:        len(id),
		TimestampMs:   int64(u.Time()),
		RandomPayload: hex.EncodeToString(u.Entropy()),
	}, nil
}

func (g *ULIDGenerator) parse(id string) (ulid.ULID, error) {
	if len(id) != ulid.EncodedSize {
		return ulid.ULID{}, invalid("expected length %d, got %d", ulid.EncodedSize, len(id))
	}
	u, err := ulid.ParseStrict(id)
	if err != nil {
		return ulid.ULID{}, invalid("%v", err)
	}
	return u, nil
}
