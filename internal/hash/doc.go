// Package hash provides the hash functions used by classmap.
//
// # Name Hashing
//
// String hashes attribute names to the 32-bit value that seeds a class map
// probe sequence. It is xxHash64 folded to 32 bits, so every bit of the
// 64-bit digest influences the result:
//
//	h := hash.String("first_name")
//
// The value is stable across processes and platforms; interned names cache it.
//
// # CRC32-Castagnoli (CRC32C)
//
// Catalog bundles are fingerprinted with CRC32C, which uses hardware
// acceleration on x86 (SSE4.2) and ARM (CRC extension):
//
//	checksum := hash.CRC32C(data)
//
// For streaming checksums:
//
//	h := hash.NewCRC32C()
//	h.Write(chunk1)
//	h.Write(chunk2)
//	checksum := h.Sum32()
package hash
