// Package probe implements capacity planning and the open-addressing probe
// sequence shared by every writer and reader of a class map.
//
// # Capacity
//
// Capacity returns the smallest power of two that keeps a table holding n
// entries at or below a 3/4 load factor, with a floor of three entries so
// that empty and tiny tables still probe over at least four slots.
//
// # Probe Sequence
//
// Seq walks slots with the perturbed linear-congruential recurrence
//
//	bucket = ((bucket << 2) + bucket + hash + 1) & mask
//	hash >>= 5
//
// Shifting the hash folds higher-order bits into the walk so colliding keys
// diverge quickly. Once the perturbation reaches zero the recurrence
// degenerates to bucket = 5*bucket + 1 (mod 2^k), which visits every slot of
// a power-of-two table, so a probe always reaches an empty slot while the
// table is not full.
//
// Insertion and lookup must use the same Seq; the slot a key lands in is a
// function of this walk.
package probe
