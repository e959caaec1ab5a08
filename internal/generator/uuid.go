package generator

import (
	"github.com/google/uuid"
)

// UUIDGenerator issues random (v4) UUIDs, used as book record IDs.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Scheme() Scheme { return SchemeUUID }

func (g *UUIDGenerator) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (g *UUIDGenerator) Validate(id string) error {
	_, err := g.parse(id)
	return err
}

func (g *UUIDGenerator) Parse(id string) (*ParseResult, error) {
	u, err := g.parse(id)
	if err != nil {
		return nil, err
	}
	return &ParseResult{
		Scheme:      SchemeUUID,
		Length:      len(id),
		UUIDVersion: int(u.Version()),
		UUIDVariant: variantName(u.Variant()),
	}, nil
}

func (g *UUIDGenerator) parse(id string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, invalid("%v", err)
	}
	if u.Version() != 4 {
		return uuid.Nil, invalid("expected UUID v4, got v%d", u.Version())
	}
	return u, nil
}

func variantName(v uuid.Variant) string {
	switch v {
	case uuid.RFC4122:
		return "RFC4122"
	case uuid.Reserved:
		return "Reserved"
	case uuid.Microsoft:
		return "Microsoft"
	case uuid.Future:
		return "Future"
	default:
		return "Unknown"
	}
}
