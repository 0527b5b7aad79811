package spec

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/vk/shapegridgo/internal/shape"
	"github.com/vk/shapegridgo/internal/unify"
)

// Match checks a value tree against a spec, binding symbolic
// dimensions through the ledger. A nil ledger starts a fresh session;
// the (possibly newly created) ledger is returned so later checks can
// chain against the same bindings. Matching is fail-fast: the first
// conflict terminates the check and later positions are not evaluated.
// On failure the ledger keeps every binding made before the conflict.
func Match(v shape.Value, s Spec, led *unify.Ledger, name string) (*unify.Ledger, error) {
	if led == nil {
		led = unify.NewLedger()
	}
	if err := Validate(s); err != nil {
		return led, err
	}
	return led, match(v, s, led, name, name)
}

// MatchShape is the flat-array convenience form of Match.
func MatchShape(actual shape.Shape, s Spec, led *unify.Ledger, name string) (*unify.Ledger, error) {
	return Match(shape.Array{S: actual}, s, led, name)
}

// match dispatches exhaustively on the spec variant. subject is the
// top-level name for diagnostics; path grows through tuples and
// object keys and prefixes every binding source.
func match(v shape.Value, s Spec, led *unify.Ledger, subject, path string) error {
	switch sp := s.(type) {
	case ShapeSpec:
		arr, ok := v.(shape.Array)
		if !ok {
			return &StructuralMismatchError{
				Subject:  subject,
				Path:     path,
				Spec:     sp.String(),
				Actual:   v.String(),
				Reason:   fmt.Sprintf("expected an array, got %s", kindOf(v)),
				Bindings: led.String(),
			}
		}
		return matchShape(arr.S, sp, led, subject, path)

	case TupleSpec:
		tup, ok := v.(shape.Tuple)
		if !ok {
			return &StructuralMismatchError{
				Subject:  subject,
				Path:     path,
				Spec:     sp.String(),
				Actual:   v.String(),
				Reason:   fmt.Sprintf("expected a tuple of %d values, got %s", len(sp), kindOf(v)),
				Bindings: led.String(),
			}
		}
		if len(tup) != len(sp) {
			return &StructuralMismatchError{
				Subject:  subject,
				Path:     path,
				Spec:     sp.String(),
				Actual:   v.String(),
				Reason:   fmt.Sprintf("expected a tuple of %d values, got %d", len(sp), len(tup)),
				Bindings: led.String(),
			}
		}
		for i, sub := range sp {
			if err := match(tup[i], sub, led, subject, fmt.Sprintf("%s.%d", path, i)); err != nil {
				return err
			}
		}
		return nil

	case ObjectSpec:
		obj, ok := v.(shape.Object)
		if !ok {
			return &StructuralMismatchError{
				Subject:  subject,
				Path:     path,
				Spec:     sp.String(),
				Actual:   v.String(),
				Reason:   fmt.Sprintf("expected an object, got %s", kindOf(v)),
				Bindings: led.String(),
			}
		}
		var missing, extra []string
		for k := range sp {
			if _, ok := obj[k]; !ok {
				missing = append(missing, k)
			}
		}
		for k := range obj {
			if _, ok := sp[k]; !ok {
				extra = append(extra, k)
			}
		}
		if len(missing) > 0 || len(extra) > 0 {
			return &StructuralMismatchError{
				Subject:  subject,
				Path:     path,
				Spec:     sp.String(),
				Actual:   v.String(),
				Reason:   keySetReason(missing, extra),
				Missing:  missing,
				Extra:    extra,
				Bindings: led.String(),
			}
		}
		keys := make([]string, 0, len(sp))
		for k := range sp {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := match(obj[k], sp[k], led, subject, path+"."+k); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown spec variant %T", s)
	}
}

// matchShape compares one concrete shape against a ShapeSpec. With a
// leading ellipsis the non-ellipsis elements are matched against the
// trailing positions, so the ellipsis absorbs exactly
// rank − len(elems) leading dimensions.
func matchShape(actual shape.Shape, sp ShapeSpec, led *unify.Ledger, subject, path string) error {
	elems := []Elem(sp)
	hasEllipsis := len(elems) > 0 && elems[0] == Ellipsis
	if hasEllipsis {
		elems = elems[1:]
	}

	if hasEllipsis {
		if len(actual) < len(elems) {
			return &RankMismatchError{
				Subject:  subject,
				Spec:     sp.String(),
				Shape:    actual,
				Expected: strconv.Itoa(len(elems)) + "+",
				Actual:   len(actual),
				Bindings: led.String(),
			}
		}
	} else if len(actual) != len(elems) {
		return &RankMismatchError{
			Subject:  subject,
			Spec:     sp.String(),
			Shape:    actual,
			Expected: strconv.Itoa(len(elems)),
			Actual:   len(actual),
			Bindings: led.String(),
		}
	}

	offset := len(actual) - len(elems)
	for i, e := range elems {
		pos := offset + i
		val := actual[pos]
		switch e := e.(type) {
		case Fixed:
			if val != int(e) {
				return &DimensionMismatchError{
					Subject:  subject,
					Spec:     sp.String(),
					Shape:    actual,
					Position: pos,
					Expected: int(e),
					Actual:   val,
					Bindings: led.String(),
				}
			}
		case Symbolic:
			if err := led.Bind(e.Dim, val, fmt.Sprintf("%s[%d]", path, pos)); err != nil {
				return fmt.Errorf("%s: %w", subject, err)
			}
		case wildcardElem:
			// Accepts any size; distinct from an absent position,
			// which is always a rank or structural error.
		}
	}
	return nil
}

func kindOf(v shape.Value) string {
	switch v.(type) {
	case shape.Array:
		return "an array"
	case shape.Tuple:
		return "a tuple"
	case shape.Object:
		return "an object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
