package hash

import "github.com/cespare/xxhash/v2"

// String returns the 32-bit name hash of s.
func String(s string) uint32 {
	h := xxhash.Sum64String(s)
	return uint32(h) ^ uint32(h>>32)
}
