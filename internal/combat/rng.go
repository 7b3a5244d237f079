package combat

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	mrand "math/rand"
)

// NewSeed returns a seed drawn from the OS entropy source.
func NewSeed() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 1
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]) & math.MaxInt64)
	if seed == 0 {
		seed = 1
	}
	return seed
}

// newRand builds the session's random source. Every shuffle and random
// pick in a combat flows through one *rand.Rand so a fixed seed replays
// the combat exactly.
func newRand(seed int64) *mrand.Rand {
	if seed == 0 {
		seed = NewSeed()
	}
	return mrand.New(mrand.NewSource(seed))
}
