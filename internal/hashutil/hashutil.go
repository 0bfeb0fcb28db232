// Package hashutil provides a fixed-seed string hash so that name-keyed
// tables lay out identically across runs and platforms, unlike Go's
// per-process randomized map hashing.
package hashutil

import "github.com/cespare/xxhash/v2"

// Seed is the fixed xxhash seed shared by every table in the runtime.
// Changing it changes table layouts, not correctness.
const Seed uint64 = 0x6f7a7a2d736b656c // "ozz-skel"

// String returns the deterministic 64-bit hash of s.
func String(s string) uint64 {
	var d xxhash.Digest
	d.ResetWithSeed(Seed)
	_, _ = d.WriteString(s)
	return d.Sum64()
}
