// Package spec defines shape specifications and the matcher that
// checks concrete shapes against them. A specification is a closed
// recursive sum: a sequence of per-dimension elements, a tuple of
// nested specs, or a string-keyed object of nested specs. Matching
// binds symbolic dimensions through a unify.Ledger so occurrences of
// the same handle must agree across an entire session.
package spec

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vk/shapegridgo/internal/dim"
)

// Elem is one element of a ShapeSpec. The concrete variants are
// Fixed, Symbolic, Wildcard and Ellipsis; the set is closed.
type Elem interface {
	elem()
	String() string
}

// Fixed requires the dimension at its position to equal the given size.
type Fixed int

// Symbolic binds the dimension at its position to a shared handle.
type Symbolic struct {
	Dim *dim.Dim
}

type wildcardElem struct{}
type ellipsisElem struct{}

// Wildcard accepts any size at its position without binding anything.
var Wildcard Elem = wildcardElem{}

// Ellipsis absorbs zero or more unconstrained leading dimensions. At
// most one is allowed per ShapeSpec and it must be the first element.
var Ellipsis Elem = ellipsisElem{}

func (Fixed) elem()        {}
func (Symbolic) elem()     {}
func (wildcardElem) elem() {}
func (ellipsisElem) elem() {}

func (f Fixed) String() string    { return fmt.Sprintf("%d", int(f)) }
func (s Symbolic) String() string { return s.Dim.Name() }
func (wildcardElem) String() string { return "*" }
func (ellipsisElem) String() string { return "..." }

// Sym wraps a dimension handle as a spec element.
func Sym(d *dim.Dim) Symbolic { return Symbolic{Dim: d} }

// Spec is a shape specification. The concrete variants are ShapeSpec,
// TupleSpec and ObjectSpec; the set is closed.
type Spec interface {
	spec()
	String() string
}

// ShapeSpec constrains a single array, one element per dimension.
type ShapeSpec []Elem

// TupleSpec constrains an ordered tuple of values, e.g. a multi-array
// return. Arity must match exactly.
type TupleSpec []Spec

// ObjectSpec constrains a string-keyed object. The key set must match
// exactly: missing and extra keys are both structural errors.
type ObjectSpec map[string]Spec

func (ShapeSpec) spec()  {}
func (TupleSpec) spec()  {}
func (ObjectSpec) spec() {}

// Of builds a ShapeSpec from loose values: int, *dim.Dim, or Elem.
// It panics on any other type; specs are built by code, not data.
func Of(elems ...any) ShapeSpec {
	out := make(ShapeSpec, 0, len(elems))
	for i, e := range elems {
		switch v := e.(type) {
		case int:
			out = append(out, Fixed(v))
		case *dim.Dim:
			out = append(out, Symbolic{Dim: v})
		case Elem:
			out = append(out, v)
		default:
			panic(fmt.Sprintf("spec.Of: invalid element %T at position %d", e, i))
		}
	}
	return out
}

func (s ShapeSpec) String() string {
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t TupleSpec) String() string {
	parts := make([]string, len(t))
	for i, s := range t {
		parts[i] = s.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// String renders the object spec with sorted keys so output is stable.
func (o ObjectSpec) String() string {
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

// Validate checks the structural invariants of a spec: at most one
// ellipsis per ShapeSpec, only in the first position, and no negative
// fixed sizes. Matching assumes a validated spec.
func Validate(s Spec) error {
	switch v := s.(type) {
	case ShapeSpec:
		for i, e := range v {
			switch e := e.(type) {
			case ellipsisElem:
				if i != 0 {
					return fmt.Errorf("spec %s: ellipsis only allowed as the first element, found at position %d", v, i)
				}
			case Fixed:
				if e < 0 {
					return fmt.Errorf("spec %s: negative fixed size %d at position %d", v, int(e), i)
				}
			}
		}
		return nil
	case TupleSpec:
		for i, sub := range v {
			if err := Validate(sub); err != nil {
				return fmt.Errorf("tuple element %d: %w", i, err)
			}
		}
		return nil
	case ObjectSpec:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := Validate(v[k]); err != nil {
				return fmt.Errorf("key %q: %w", k, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown spec variant %T", s)
	}
}
