package sim

import (
	"log"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"
)

// IDGenerator hands out the IDs of events, packets, and signals.
type IDGenerator interface {
	Generate() string
}

var ids struct {
	sync.Mutex
	gen IDGenerator
}

// UseSequentialIDGenerator makes IDs count up from 1, so that two runs of the
// same scenario give the same IDs. This is the default.
func UseSequentialIDGenerator() {
	setIDGenerator(new(counterIDs))
}

// UseParallelIDGenerator makes IDs globally unique, at the cost of
// reproducibility.
func UseParallelIDGenerator() {
	setIDGenerator(xidIDs{})
}

func setIDGenerator(g IDGenerator) {
	ids.Lock()
	defer ids.Unlock()

	if ids.gen != nil {
		log.Panic("the ID generator is already in use")
	}

	ids.gen = g
}

// GetIDGenerator returns the generator in use. The first call fixes the
// generator for the rest of the process.
func GetIDGenerator() IDGenerator {
	ids.Lock()
	defer ids.Unlock()

	if ids.gen == nil {
		ids.gen = new(counterIDs)
	}

	return ids.gen
}

type counterIDs struct {
	last atomic.Uint64
}

func (c *counterIDs) Generate() string {
	return strconv.FormatUint(c.last.Add(1), 10)
}

type xidIDs struct{}

func (xidIDs) Generate() string {
	return xid.New().String()
}
