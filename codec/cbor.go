package codec

import "github.com/fxamacker/cbor/v2"

// CBOR is a binary codec backed by github.com/fxamacker/cbor/v2.
// Struct fields use their "cbor" tag, falling back to the "json" tag.
type CBOR struct{}

// Marshal encodes the value to CBOR.
func (CBOR) Marshal(v any) ([]byte, error) { return cbor.Marshal(v) }

// Unmarshal decodes the CBOR data into v.
func (CBOR) Unmarshal(data []byte, v any) error { return cbor.Unmarshal(data, v) }

// Name returns the unique name of the codec ("cbor").
func (CBOR) Name() string { return "cbor" }
