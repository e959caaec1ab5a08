package generator

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// Layout of an ID, most significant bit first:
// 1 unused sign bit | 41 bits ms since epoch | 10 bits machine | 12 bits sequence.
const (
	timestampBits = 41
	machineIDBits = 10
	sequenceBits  = 12

	maxTimestamp = (1 << timestampBits) - 1
	maxMachineID = (1 << machineIDBits) - 1
	maxSequence  = (1 << sequenceBits) - 1

	machineIDShift = sequenceBits
	timestampShift = sequenceBits + machineIDBits
)

// DefaultSnowflakeEpoch is 2024-01-01T00:00:00Z in unix ms.
const DefaultSnowflakeEpoch int64 = 1704067200000

var errClockBackwards = errors.New("clock moved backwards")

// SnowflakeGenerator issues time-ordered 64-bit numeric IDs.
type SnowflakeGenerator struct {
	epoch     int64
	machineID int64
	now       func() int64

	mu       sync.Mutex
	lastMs   int64
	sequence int64
}

// NewSnowflakeGenerator validates machineID against the 10-bit field.
// epoch is in unix milliseconds and must not be in the future.
func NewSnowflakeGenerator(machineID, epoch int64) (*SnowflakeGenerator, error) {
	return newSnowflake(machineID, epoch, func() int64 { return time.Now().UnixMilli() })
}

func newSnowflake(machineID, epoch int64, now func() int64) (*SnowflakeGenerator, error) {
	if machineID < 0 || machineID > maxMachineID {
		return nil, fmt.Errorf("snowflake machine_id must be between 0 and %d, got %d", maxMachineID, machineID)
	}
	if epoch > now() {
		return nil, fmt.Errorf("snowflake epoch %d is in the future", epoch)
	}
	return &SnowflakeGenerator{epoch: epoch, machineID: machineID, now: now}, nil
}

func (g *SnowflakeGenerator) Scheme() Scheme { return SchemeSnowflake }

func (g *SnowflakeGenerator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := g.nextLocked()
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(id, 10), nil
}

func (g *SnowflakeGenerator) generateBatch(count int) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]string, count)
	for i := range ids {
		id, err := g.nextLocked()
		if err != nil {
			return nil, err
		}
		ids[i] = strconv.FormatInt(id, 10)
	}
	return ids, nil
}

// nextLocked must be called with g.mu held.
func (g *SnowflakeGenerator) nextLocked() (int64, error) {
	ms := g.now()
	if ms < g.lastMs {
		return 0, fmt.Errorf("%w: now=%d last=%d", errClockBackwards, ms, g.lastMs)
	}

	if ms == g.lastMs {
		g.sequence = (g.sequence + 1) & maxSequence
		if g.sequence == 0 {
			// sequence exhausted for this millisecond
			for ms <= g.lastMs {
				ms = g.now()
			}
		}
	} else {
		g.sequence = 0
	}
	g.lastMs = ms

	elapsed := ms - g.epoch
	if elapsed > maxTimestamp {
		return 0, fmt.Errorf("snowflake timestamp overflow: %d ms since epoch", elapsed)
	}
	return elapsed<<timestampShift | g.machineID<<machineIDShift | g.sequence, nil
}

func (g *SnowflakeGenerator) Validate(id string) error {
	_, err := g.decode(id)
	return err
}

func (g *SnowflakeGenerator) Parse(id string) (*ParseResult, error) {
	n, err := g.decode(id)
	if err != nil {
		return nil, err
	}
	return &ParseResult{
		Scheme:      SchemeSnowflake,
		Length:      len(id),
		TimestampMs: n>>timestampShift + g.epoch,
		MachineID:   n >> machineIDShift & maxMachineID,
		Sequence:    n & maxSequence,
	}, nil
}

func (g *SnowflakeGenerator) decode(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, invalid("not a 64-bit integer")
	}
	if n < 0 {
		return 0, invalid("must not be negative")
	}
	if ts := n>>timestampShift + g.epoch; ts > g.now() {
		return 0, invalid("timestamp %d is in the future", ts)
	}
	return n, nil
}
