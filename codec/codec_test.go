package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attr struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Kind string `json:"kind" yaml:"kind" toml:"kind"`
	Low  *int   `json:"low,omitempty" yaml:"low,omitempty" toml:"low,omitempty"`
}

type class struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Members []attr `json:"members" yaml:"members" toml:"members"`
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json", "yaml", "toml", "cbor"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}
	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestByExt(t *testing.T) {
	tests := map[string]string{
		".json": "go-json",
		"JSON":  "go-json",
		".yml":  "yaml",
		"yaml":  "yaml",
		".toml": "toml",
		".cbor": "cbor",
	}
	for ext, want := range tests {
		c, ok := ByExt(ext)
		require.True(t, ok, ext)
		assert.Equal(t, want, c.Name(), ext)
	}
	_, ok := ByExt(".zst")
	assert.False(t, ok)

	c, ok := ForPath("classes/person.yaml")
	require.True(t, ok)
	assert.Equal(t, "yaml", c.Name())

	assert.Equal(t, "json", Ext(GoJSON{}))
	assert.Equal(t, "cbor", Ext(CBOR{}))
}

func TestDecodeDocuments(t *testing.T) {
	low := 0
	want := class{Name: "Person", Members: []attr{{Name: "name", Kind: "str"}, {Name: "age", Kind: "range", Low: &low}}}

	docs := map[Codec]string{
		JSON{}:   `{"name":"Person","members":[{"name":"name","kind":"str"},{"name":"age","kind":"range","low":0}]}`,
		GoJSON{}: `{"name":"Person","members":[{"name":"name","kind":"str"},{"name":"age","kind":"range","low":0}]}`,
		YAML{}: `
name: Person
members:
  - name: name
    kind: str
  - name: age
    kind: range
    low: 0
`,
		TOML{}: `
name = "Person"

[[members]]
name = "name"
kind = "str"

[[members]]
name = "age"
kind = "range"
low = 0
`,
	}
	for c, doc := range docs {
		t.Run(c.Name(), func(t *testing.T) {
			var got class
			require.NoError(t, c.Unmarshal([]byte(doc), &got))
			assert.Equal(t, want, got)
		})
	}

	// CBOR has no text form; encode first.
	var got class
	require.NoError(t, CBOR{}.Unmarshal(MustMarshal(CBOR{}, want), &got))
	assert.Equal(t, want, got)
}

func TestMustMarshal_Panics(t *testing.T) {
	assert.Panics(t, func() { MustMarshal(JSON{}, make(chan int)) })
	assert.NotEmpty(t, MustMarshal(nil, map[string]int{"a": 1}))
}
