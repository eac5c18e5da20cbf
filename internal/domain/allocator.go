package domain

import "fmt"

// MinorAssignment is one resolved minor identity: the (suit, rank) pair and
// the final byte value that produced it after collision repair. The value is
// retained as the card's hash signature so any deck can be audited back to
// its digest.
type MinorAssignment struct {
	Suit  Suit
	Rank  Rank
	Value byte
}

// pairIndex maps a byte value onto the 56-pair identity space through a
// single modulus. Deriving suit and rank from one pair index (rather than
// reducing the value by two separate moduli) matters: with independent
// `mod 4` and `mod 14` reductions both indices share the value's parity, so
// half the pairs are unreachable from any byte and no probe step can repair
// that. One modulus makes a +1 probe walk the whole pair space.
func pairIndex(v byte) int {
	return int(v) % (len(Suits) * len(Ranks))
}

// AllocateMinors assigns each of the 56 minor slots a unique (suit, rank)
// pair, seeded by the slot's raw hash byte. Collisions are repaired by
// probing the value forward one step at a time, so the repair itself is a
// pure function of the digest. The returned assignments always form a
// complete bijection onto the 56 possible pairs.
//
// A probe never exhausts in practice (any 256 consecutive byte values cover
// every pair index at least four times), but a full wrap without a free pair
// still returns ErrAllocationExhausted rather than looping.
func AllocateMinors(minorRaw []byte) ([]MinorAssignment, error) {
	if len(minorRaw) != MinorCount {
		// Caller invariant, not probe exhaustion.
		return nil, fmt.Errorf("allocate minors: expected %d seed values, got %d", MinorCount, len(minorRaw))
	}

	used := make([]bool, len(Suits)*len(Ranks))
	out := make([]MinorAssignment, MinorCount)

	for slot, start := range minorRaw {
		v := start
		assigned := false
		for probe := 0; probe < 256; probe++ {
			pair := pairIndex(v)
			if !used[pair] {
				used[pair] = true
				out[slot] = MinorAssignment{
					Suit:  Suits[pair/len(Ranks)],
					Rank:  Ranks[pair%len(Ranks)],
					Value: v,
				}
				assigned = true
				break
			}
			v++ // byte arithmetic wraps 255 -> 0
		}
		if !assigned {
			return nil, ErrAllocationExhausted
		}
	}

	return out, nil
}
