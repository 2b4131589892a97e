package softmaxgo

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// DefaultSeed is used by the CLI when no seed is configured.
const DefaultSeed uint64 = 42

// NewRand returns a seeded generator that is safe for concurrent use.
// Two generators built from the same seed produce the same sequence.
func NewRand(seed uint64) *rand.Rand {
	src := &rand.LockedSource{}
	src.Seed(seed)
	return rand.New(src)
}

func checkRand(r *rand.Rand) error {
	if r == nil {
		return fmt.Errorf("nil random generator: %w", ErrInvalidArgument)
	}
	return nil
}
