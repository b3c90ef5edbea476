package member

import "fmt"

// Spec is the declarative form of a descriptor, as found in class documents.
type Spec struct {
	// Kind selects the descriptor: value, str, int, float, bool, range, enum
	// or list (case-insensitive).
	Kind string
	// Default overrides the descriptor's default value. It is validated.
	Default any
	// Low and High bound a range.
	Low, High *int
	// Items lists the values of an enum.
	Items []any
	// Item describes list elements. Nil accepts any element.
	Item *Spec
}

// FromSpec builds a descriptor from s.
func FromSpec(s Spec) (Descriptor, error) {
	switch kindKey(s.Kind) {
	case "value", "":
		return NewValue(s.Default), nil
	case "str":
		if s.Default == nil {
			return NewStr(), nil
		}
		def, err := NewStr().Validate(s.Default)
		if err != nil {
			return nil, fmt.Errorf("default: %w", err)
		}
		return NewStrDefault(def.(string)), nil
	case "int":
		def, err := validateDefault(NewInt(0), s.Default)
		if err != nil {
			return nil, err
		}
		return NewInt(def.(int)), nil
	case "float":
		def, err := validateDefault(NewFloat(0), s.Default)
		if err != nil {
			return nil, err
		}
		return NewFloat(def.(float64)), nil
	case "bool":
		def, err := validateDefault(NewBool(false), s.Default)
		if err != nil {
			return nil, err
		}
		return NewBool(def.(bool)), nil
	case "range":
		var opts []RangeOption
		if s.Low != nil {
			opts = append(opts, Low(*s.Low))
		}
		if s.High != nil {
			opts = append(opts, High(*s.High))
		}
		if s.Low != nil && s.High != nil && *s.Low > *s.High {
			return nil, fmt.Errorf("range: low %d exceeds high %d", *s.Low, *s.High)
		}
		r := NewRange(opts...)
		if s.Default != nil {
			def, err := r.Validate(s.Default)
			if err != nil {
				return nil, fmt.Errorf("default: %w", err)
			}
			RangeDefault(def.(int))(r)
		}
		return r, nil
	case "enum":
		if len(s.Items) == 0 {
			return nil, fmt.Errorf("enum: no items")
		}
		items := s.Items
		if s.Default != nil {
			e := NewEnum(items...)
			def, err := e.Validate(s.Default)
			if err != nil {
				return nil, fmt.Errorf("default: %w", err)
			}
			// The default leads the item list.
			reordered := []any{def}
			for _, it := range items {
				if !equalItem(it, def) {
					reordered = append(reordered, it)
				}
			}
			items = reordered
		}
		return NewEnum(items...), nil
	case "list":
		var item Descriptor
		if s.Item != nil {
			var err error
			if item, err = FromSpec(*s.Item); err != nil {
				return nil, fmt.Errorf("list item: %w", err)
			}
		}
		return NewList(item), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
}

func validateDefault(d Descriptor, v any) (any, error) {
	if v == nil {
		return d.Default(), nil
	}
	def, err := d.Validate(v)
	if err != nil {
		return nil, fmt.Errorf("default: %w", err)
	}
	return def, nil
}
