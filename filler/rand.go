package filler

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// Randomizer is the solver's source of randomness. It only decides which
// candidate words get sampled for scoring, never whether a fill is legal,
// so tests can swap in a deterministic sequence.
type Randomizer interface {
	Intn(n int) int
}

// NewRandomizer returns the production randomness source. A zero seed
// draws from system entropy; any other seed gives a reproducible sequence.
func NewRandomizer(seed uint64) Randomizer {
	if seed == 0 {
		return frand.New()
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return frand.NewCustom(key[:], 1024, 12)
}
