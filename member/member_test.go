package member

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarMembers(t *testing.T) {
	tests := []struct {
		name    string
		d       Descriptor
		kind    string
		def     any
		valid   []any
		want    []any
		invalid []any
	}{
		{"value", NewValue("x"), "Value", "x", []any{1, nil, "s"}, []any{1, nil, "s"}, nil},
		{"str", NewStrDefault("anon"), "Str", "anon", []any{"", "bob"}, []any{"", "bob"}, []any{1, nil, []byte("b")}},
		{"int", NewInt(7), "Int", 7, []any{int64(3), uint8(4), 5.0}, []any{3, 4, 5}, []any{5.5, "5", nil}},
		{"float", NewFloat(1.5), "Float", 1.5, []any{2, float32(0.5), 3.25}, []any{2.0, 0.5, 3.25}, []any{"1.0", true}},
		{"bool", NewBool(true), "Bool", true, []any{false}, []any{false}, []any{0, "true"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.d.Kind())
			assert.Equal(t, tt.def, tt.d.Default())
			for i, v := range tt.valid {
				got, err := tt.d.Validate(v)
				require.NoError(t, err)
				assert.Equal(t, tt.want[i], got)
			}
			for _, v := range tt.invalid {
				_, err := tt.d.Validate(v)
				var ve *ValidationError
				require.ErrorAs(t, err, &ve, "%#v", v)
				assert.Equal(t, tt.kind, ve.Kind)
			}
		})
	}
}

func TestRange(t *testing.T) {
	r := NewRange(Low(0), High(10))
	assert.Equal(t, 0, r.Default())

	got, err := r.Validate(int32(10))
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	_, err = r.Validate(-1)
	assert.ErrorContains(t, err, "below minimum 0")
	_, err = r.Validate(11)
	assert.ErrorContains(t, err, "above maximum 10")

	assert.Equal(t, 5, NewRange(Low(0), RangeDefault(5)).Default())
	assert.Equal(t, 3, NewRange(High(3)).Default())
	assert.Equal(t, 0, NewRange().Default())

	low, hasLow, high, hasHigh := NewRange(Low(2)).Bounds()
	assert.Equal(t, 2, low)
	assert.True(t, hasLow)
	assert.Equal(t, 0, high)
	assert.False(t, hasHigh)
}

func TestEnum(t *testing.T) {
	e := NewEnum("red", "green", "blue")
	assert.Equal(t, "red", e.Default())

	got, err := e.Validate("blue")
	require.NoError(t, err)
	assert.Equal(t, "blue", got)

	_, err = e.Validate("pink")
	assert.Error(t, err)

	// Numeric items match across integer types.
	n := NewEnum(1, 2, 3)
	got, err = n.Validate(int64(2))
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	// Uncomparable values never match.
	_, err = e.Validate([]any{"red"})
	assert.Error(t, err)

	type boxed struct{ V any }
	b := NewEnum([]int{1}, boxed{V: 1}, nil)
	got, err = b.Validate(boxed{V: 1})
	require.NoError(t, err)
	assert.Equal(t, boxed{V: 1}, got)
	_, err = b.Validate(boxed{V: []int{1}})
	assert.Error(t, err)
	got, err = b.Validate(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Panics(t, func() { NewEnum() })
}

func TestList(t *testing.T) {
	l := NewList(NewInt(0))
	assert.Equal(t, []any{}, l.Default())

	got, err := l.Validate([]any{1, int64(2), 3.0})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, got)

	got, err = l.Validate([]int{4, 5})
	require.NoError(t, err)
	assert.Equal(t, []any{4, 5}, got)

	_, err = l.Validate([]any{1, "two"})
	assert.ErrorContains(t, err, "list item 1")

	_, err = l.Validate("nope")
	assert.Error(t, err)

	untyped := NewList(nil)
	got, err = untyped.Validate([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)
	assert.Nil(t, untyped.Item())
}

func TestBase_Refcount(t *testing.T) {
	s := NewStr()
	s.Retain()
	s.Retain()
	assert.Equal(t, int64(2), s.Refs())
	s.Release()
	assert.Equal(t, int64(1), s.Refs())
}

func ptr(n int) *int { return &n }

func TestFromSpec(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		kind string
		def  any
	}{
		{"empty kind", Spec{}, "Value", nil},
		{"value", Spec{Kind: "value", Default: 3}, "Value", 3},
		{"str", Spec{Kind: "Str", Default: "x"}, "Str", "x"},
		{"str no default", Spec{Kind: "str"}, "Str", ""},
		{"int from float", Spec{Kind: "int", Default: 42.0}, "Int", 42},
		{"float", Spec{Kind: "float", Default: 2}, "Float", 2.0},
		{"bool", Spec{Kind: " BOOL ", Default: true}, "Bool", true},
		{"range", Spec{Kind: "range", Low: ptr(0), High: ptr(150)}, "Range", 0},
		{"range default", Spec{Kind: "range", Low: ptr(0), Default: uint64(30)}, "Range", 30},
		{"enum", Spec{Kind: "enum", Items: []any{"a", "b"}}, "Enum", "a"},
		{"enum default", Spec{Kind: "enum", Items: []any{"a", "b", "c"}, Default: "b"}, "Enum", "b"},
		{"list", Spec{Kind: "list", Item: &Spec{Kind: "str"}}, "List", []any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := FromSpec(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, d.Kind())
			assert.Equal(t, tt.def, d.Default())
		})
	}
}

func TestFromSpec_EnumDefaultKeepsItems(t *testing.T) {
	d, err := FromSpec(Spec{Kind: "enum", Items: []any{"a", "b", "c"}, Default: "c"})
	require.NoError(t, err)
	assert.Equal(t, []any{"c", "a", "b"}, d.(*Enum).Items())
}

func TestFromSpec_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		msg  string
	}{
		{"unknown", Spec{Kind: "Typed"}, "unknown member kind"},
		{"bad str default", Spec{Kind: "str", Default: 1}, "default"},
		{"bad int default", Spec{Kind: "int", Default: "1"}, "default"},
		{"inverted range", Spec{Kind: "range", Low: ptr(5), High: ptr(1)}, "exceeds high"},
		{"range default out of bounds", Spec{Kind: "range", High: ptr(1), Default: 2}, "above maximum"},
		{"empty enum", Spec{Kind: "enum"}, "no items"},
		{"enum default not an item", Spec{Kind: "enum", Items: []any{"a"}, Default: "z"}, "expected one of"},
		{"bad list item", Spec{Kind: "list", Item: &Spec{Kind: "nope"}}, "list item"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromSpec(tt.spec)
			assert.ErrorContains(t, err, tt.msg)
		})
	}

	_, err := FromSpec(Spec{Kind: "Typed"})
	assert.ErrorIs(t, err, ErrUnknownKind)
}
