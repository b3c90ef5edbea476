// Package schema describes classes declaratively and compiles them into
// atom classes.
//
// A document lists classes and their members in slot order:
//
//	version: 1
//	classes:
//	  - name: Person
//	    members:
//	      - {name: first_name, kind: str}
//	      - {name: age, kind: range, low: 0}
//
// Documents are decoded with any codec from package codec. Member names are
// kept untyped while decoding; a name that is not a string is rejected when
// the class map is built.
package schema

import (
	"errors"
	"fmt"

	"github.com/hupe1980/classmap/member"
)

// CurrentVersion is the newest document version this package understands.
const CurrentVersion = 1

var (
	// ErrUnsupportedVersion is returned for documents newer than CurrentVersion.
	ErrUnsupportedVersion = errors.New("unsupported schema version")
	// ErrDuplicateClass is returned when two classes share a name.
	ErrDuplicateClass = errors.New("duplicate class")
	// ErrInvalidClass is returned for a class without a name.
	ErrInvalidClass = errors.New("invalid class")
)

// Document is a set of class definitions.
type Document struct {
	Version int        `json:"version" yaml:"version" toml:"version"`
	Classes []ClassDef `json:"classes" yaml:"classes" toml:"classes"`
}

// ClassDef defines one class.
type ClassDef struct {
	Name    string      `json:"name" yaml:"name" toml:"name"`
	Members []MemberDef `json:"members" yaml:"members" toml:"members"`
}

// MemberDef defines one attribute.
type MemberDef struct {
	// Name is the attribute name. It must decode to a string.
	Name    any        `json:"name" yaml:"name" toml:"name"`
	Kind    string     `json:"kind" yaml:"kind" toml:"kind"`
	Default any        `json:"default,omitempty" yaml:"default,omitempty" toml:"default,omitempty"`
	Low     *int       `json:"low,omitempty" yaml:"low,omitempty" toml:"low,omitempty"`
	High    *int       `json:"high,omitempty" yaml:"high,omitempty" toml:"high,omitempty"`
	Items   []any      `json:"items,omitempty" yaml:"items,omitempty" toml:"items,omitempty"`
	Item    *MemberDef `json:"item,omitempty" yaml:"item,omitempty" toml:"item,omitempty"`
}

// Spec converts the definition to a member spec.
func (d MemberDef) Spec() member.Spec {
	s := member.Spec{
		Kind:    d.Kind,
		Default: d.Default,
		Low:     d.Low,
		High:    d.High,
		Items:   d.Items,
	}
	if d.Item != nil {
		item := d.Item.Spec()
		s.Item = &item
	}
	return s
}

// Validate checks document-level constraints. Member-level errors are
// reported by Compile.
func (doc *Document) Validate() error {
	if doc.Version > CurrentVersion {
		return fmt.Errorf("%w: %d (max %d)", ErrUnsupportedVersion, doc.Version, CurrentVersion)
	}
	seen := make(map[string]struct{}, len(doc.Classes))
	for i, c := range doc.Classes {
		if c.Name == "" {
			return fmt.Errorf("%w: class %d has no name", ErrInvalidClass, i)
		}
		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateClass, c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}
