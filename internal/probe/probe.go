package probe

import "math/bits"

const (
	// MinEntries is the floor applied to the requested entry count.
	MinEntries = 3
	// MaxCapacity is the largest table Capacity will plan.
	MaxCapacity = 1 << 31
)

// Capacity returns the slot count for a table holding n entries.
//
// The result is max(n, MinEntries) scaled by 4/3 (rounded up) and rounded up
// to the next power of two. Negative n is treated as zero. Capacities beyond
// MaxCapacity saturate.
func Capacity(n int) uint32 {
	target := uint64(max(n, MinEntries))
	need := (target*4 + 2) / 3
	if need > MaxCapacity {
		return MaxCapacity
	}
	return NextPow2(uint32(need))
}

// NextPow2 returns the smallest power of two >= v. NextPow2(0) is 1.
func NextPow2(v uint32) uint32 {
	if v <= 1 {
		return 1
	}
	return 1 << bits.Len32(v-1)
}

// MaxLoad returns the largest entry count a table of the given capacity may
// hold.
func MaxLoad(capacity uint32) uint32 {
	return uint32(uint64(capacity) * 3 / 4)
}

// Seq is the probe sequence for one key over a table of mask+1 slots.
//
// Typical use:
//
//	for s := probe.New(hash, mask); ; s.Next() {
//	    e := &slots[s.Bucket()]
//	    ...
//	}
type Seq struct {
	mask    uint32
	bucket  uint32
	perturb uint32
	steps   uint32
}

// New starts a probe sequence for hash over a table with the given mask
// (capacity - 1).
func New(hash, mask uint32) Seq {
	return Seq{
		mask:    mask,
		bucket:  hash & mask,
		perturb: hash,
	}
}

// Bucket returns the slot currently under examination.
func (s *Seq) Bucket() uint32 { return s.bucket }

// Steps returns how many times Next has been called.
func (s *Seq) Steps() uint32 { return s.steps }

// Next advances to the next slot.
func (s *Seq) Next() {
	b := s.bucket
	s.bucket = ((b << 2) + b + s.perturb + 1) & s.mask
	s.perturb >>= 5
	s.steps++
}
