package domain_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/osmesirius-ship-it/instant-oracle/internal/domain"
)

// assertBijection fails unless the assignments cover all 56 (suit, rank)
// pairs exactly once.
func assertBijection(t *testing.T, got []domain.MinorAssignment) {
	t.Helper()

	if len(got) != 56 {
		t.Fatalf("expected 56 assignments, got %d", len(got))
	}

	seen := make(map[string]bool, 56)
	for i, m := range got {
		key := string(m.Rank) + "/" + string(m.Suit)
		if seen[key] {
			t.Fatalf("slot %d: duplicate pair %s", i, key)
		}
		seen[key] = true
	}
	if len(seen) != 56 {
		t.Fatalf("expected full coverage of 56 pairs, got %d", len(seen))
	}
}

func minorRawFrom(seed [10]byte) []byte {
	raw := make([]byte, 56)
	for i := range raw {
		raw[i] = seed[i%10]
	}
	return raw
}

func TestAllocateMinors_Bijection(t *testing.T) {
	seeds := [][10]byte{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{255, 254, 253, 252, 251, 250, 249, 248, 247, 246},
		{17, 94, 3, 201, 140, 77, 56, 56, 255, 0},
		{13, 13, 40, 40, 99, 99, 200, 200, 7, 7},
	}

	for i, seed := range seeds {
		got, err := domain.AllocateMinors(minorRawFrom(seed))
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", i, err)
		}
		assertBijection(t, got)
	}
}

func TestAllocateMinors_AllIdenticalValues(t *testing.T) {
	// Worst case for collisions: every slot starts its probe at the same
	// byte. Must still complete a valid bijection, never emit duplicates.
	for _, v := range []byte{0, 55, 56, 127, 255} {
		raw := make([]byte, 56)
		for i := range raw {
			raw[i] = v
		}

		got, err := domain.AllocateMinors(raw)
		if err != nil {
			if !errors.Is(err, domain.ErrAllocationExhausted) {
				t.Fatalf("value %d: unexpected error: %v", v, err)
			}
			continue
		}
		assertBijection(t, got)
	}
}

func TestAllocateMinors_Deterministic(t *testing.T) {
	seed := [10]byte{42, 17, 250, 3, 3, 3, 90, 180, 11, 211}

	first, err := domain.AllocateMinors(minorRawFrom(seed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := domain.AllocateMinors(minorRawFrom(seed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical input produced different assignments")
	}
}

func TestAllocateMinors_SignatureTracksProbe(t *testing.T) {
	raw := make([]byte, 56) // all zeros: slot i probes 0,1,...,i
	got, err := domain.AllocateMinors(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, m := range got {
		if m.Value != byte(i) {
			t.Errorf("slot %d: expected signature %d after probing, got %d", i, i, m.Value)
		}
	}
}

func TestAllocateMinors_FirstSlotKeepsRawValue(t *testing.T) {
	seed := [10]byte{199, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	got, err := domain.AllocateMinors(minorRawFrom(seed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Value != 199 {
		t.Errorf("unclashed slot should keep its raw byte, got %d", got[0].Value)
	}
}

func TestAllocateMinors_WrongLength(t *testing.T) {
	_, err := domain.AllocateMinors(make([]byte, 10))
	if err == nil {
		t.Fatal("expected error for short input")
	}
	if errors.Is(err, domain.ErrAllocationExhausted) {
		t.Error("a length violation should not be reported as probe exhaustion")
	}
}
