package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest is the 256-bit hash of a normalized intake record. It is the sole
// source of randomness for everything derived downstream: identical intake
// always reproduces the identical deck.
type Digest [sha256.Size]byte

// ComputeDigest hashes the canonical intake encoding.
func ComputeDigest(rec IntakeRecord) Digest {
	return sha256.Sum256(rec.canonicalBytes())
}

// Hex renders the digest as the 64-character client ID.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

const (
	// MajorCount and MinorCount partition the 78-card deck.
	MajorCount = 22
	MinorCount = 56

	minorSeedLen = sha256.Size - MajorCount // 10 seed bytes
)

// Segments is the digest reinterpreted as byte values: one value per major
// in canonical order, and 56 minor values cyclically expanded from the
// 10-byte seed tail.
type Segments struct {
	MajorValues [MajorCount]byte
	MinorSeed   [minorSeedLen]byte
	MinorRaw    [MinorCount]byte
}

// Segment splits a digest into major values and the expanded minor values.
func Segment(d Digest) Segments {
	var s Segments
	copy(s.MajorValues[:], d[:MajorCount])
	copy(s.MinorSeed[:], d[MajorCount:])
	for i := range s.MinorRaw {
		s.MinorRaw[i] = s.MinorSeed[i%minorSeedLen]
	}
	return s
}
