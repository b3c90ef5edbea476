// Package catalog loads class catalogs from a blob store.
//
// A catalog bundle is a schema document stored under a name that records how
// it is encoded:
//
//	<name>.<json|yaml|yml|toml|cbor>[.zst|.lz4]
//
// The optional compression suffix selects a zstd or lz4 frame around the
// encoded document. Reads go through the resource controller's IO limiter and
// every load records the CRC32C checksum of the stored bytes.
package catalog
