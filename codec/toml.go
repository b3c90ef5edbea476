package codec

import (
	"bytes"

	"github.com/BurntSushi/toml"
)

// TOML is a TOML codec backed by github.com/BurntSushi/toml.
// Only tables (structs and maps) can be encoded at the top level.
type TOML struct{}

// Marshal encodes the value to TOML.
func (TOML) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes the TOML data into v.
func (TOML) Unmarshal(data []byte, v any) error {
	_, err := toml.Decode(string(data), v)
	return err
}

// Name returns the unique name of the codec ("toml").
func (TOML) Name() string { return "toml" }
