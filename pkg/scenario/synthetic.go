package scenario

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
)

// Synthetic generates a reproducible trace of n cache operations over
// distinct keys. Roughly 60% of ops are gets, 35% sets and 5% removes.
// Keys are UUIDs drawn from a generator seeded with seed, so equal seeds
// give equal traces.
func Synthetic(n, distinct int, seed int64) ([]Op, error) {
	if distinct <= 0 || n < 0 {
		return nil, fmt.Errorf("n=%d distinct=%d: %w", n, distinct, ErrInvalidSynthetic)
	}

	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	src := rand.NewChaCha8(key)
	rng := rand.New(src)

	keys := make([]string, distinct)
	for i := range keys {
		id, err := uuid.NewRandomFromReader(src)
		if err != nil {
			return nil, fmt.Errorf("generate key: %w", err)
		}
		keys[i] = id.String()
	}

	ops := make([]Op, n)
	for i := range ops {
		k := keys[rng.IntN(distinct)]
		switch p := rng.IntN(100); {
		case p < 60:
			ops[i] = Op{Kind: OpGet, Key: k}
		case p < 95:
			ops[i] = Op{Kind: OpSet, Key: k, Value: strconv.Itoa(i)}
		default:
			ops[i] = Op{Kind: OpRemove, Key: k}
		}
	}
	return ops, nil
}
