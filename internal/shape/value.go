package shape

import (
	"fmt"
	"sort"
	"strings"
)

// Value is a closed sum over the structures a check can receive: a
// single array shape, an ordered tuple of values (multi-array results),
// or a string-keyed object (PyTree-style parameter maps).
type Value interface {
	value()
	String() string
}

// Array is a leaf value: one array, represented by its shape.
type Array struct {
	S Shape
}

// Tuple is an ordered sequence of nested values.
type Tuple []Value

// Object is a string-keyed mapping of nested values.
type Object map[string]Value

func (Array) value()  {}
func (Tuple) value()  {}
func (Object) value() {}

func (a Array) String() string { return a.S.String() }

func (t Tuple) String() string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// String renders the object with sorted keys so output is stable.
func (o Object) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, o[k].String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Of wraps a Shaped collaborator object as a leaf value.
func Of(s Shaped) Value { return Array{S: s.Shape()} }
