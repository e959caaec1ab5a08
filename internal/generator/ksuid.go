package generator

import (
	"encoding/hex"

	"github.com/segmentio/ksuid"
)

const ksuidEncodedLen = 27

// KSUIDGenerator issues KSUIDs.
type KSUIDGenerator struct{}

// NewKSUIDGenerator creates a new KSUIDGenerator.
func NewKSUIDGenerator() *KSUIDGenerator {
	return &KSUIDGenerator{}
}

func (g *KSUIDGenerator) Scheme() Scheme { return SchemeKSUID }

func (g *KSUIDGenerator) Generate() (string, error) {
	id, err := ksuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (g *KSUIDGenerator) Validate(id string) error {
	_, err := g.parse(id)
	return err
}

func (g *KSUIDGenerator) Parse(id string) (*ParseResult, error) {
	k, err := g.parse(id)
	if err != nil {
		return nil, err
	}
	return &ParseResult{
		Scheme:        SchemeKSUID,
		Length:        len(id),
		TimestampMs:   k.Time().UnixMilli(),
		RandomPayload: hex.EncodeToString(k.Payload()),
	}, nil
}

func (g *KSUIDGenerator) parse(id string) (ksuid.KSUID, error) {
	if len(id) != ksuidEncodedLen {
		return ksuid.Nil, invalid("expected length %d, got %d", ksuidEncodedLen, len(id))
	}
	k, err := ksuid.Parse(id)
	if err != nil {
		return ksuid.Nil, invalid("%v", err)
	}
	return k, nil
}
