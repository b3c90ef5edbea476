// Package codec centralizes the encodings of class documents.
//
// Catalog bundles record their codec in the file extension
// ("people.yaml", "people.cbor.zst"), so changing a bundle's codec means
// renaming it.
package codec

import (
	"fmt"
	"path"
	"strings"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "yaml":
		return YAML{}, true
	case "toml":
		return TOML{}, true
	case "cbor":
		return CBOR{}, true
	default:
		return nil, false
	}
}

// ByExt returns the codec for a file extension (with or without the leading
// dot). JSON files use Default.
func ByExt(ext string) (Codec, bool) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		return Default, true
	case "yaml", "yml":
		return YAML{}, true
	case "toml":
		return TOML{}, true
	case "cbor":
		return CBOR{}, true
	default:
		return nil, false
	}
}

// ForPath returns the codec for the extension of name.
func ForPath(name string) (Codec, bool) {
	return ByExt(path.Ext(name))
}

// Ext returns the file extension (without dot) used for c.
func Ext(c Codec) string {
	if c.Name() == "go-json" {
		return "json"
	}
	return c.Name()
}

// MustMarshal is a helper for tests and fixtures.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
