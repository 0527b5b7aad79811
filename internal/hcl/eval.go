// This file contains the logic for evaluating suite expressions
// (e.g. `["...", n, 128]` or `{ w = [n, m] }`) into the engine's spec
// and value types.

package hcl

import (
	"context"
	"fmt"
	"math/big"
	"reflect"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/shapegridgo/internal/config"
	"github.com/vk/shapegridgo/internal/ctxlog"
	"github.com/vk/shapegridgo/internal/dim"
	"github.com/vk/shapegridgo/internal/shape"
	"github.com/vk/shapegridgo/internal/spec"
)

// dimCapsule is the cty capsule type wrapping dimension handles, so a
// spec expression can reference a declared dim by its bare name.
var dimCapsule = cty.Capsule("dim", reflect.TypeOf(dim.Dim{}))

// EvalContext builds the evaluation scope for spec expressions: every
// declared dimension name resolves to its shared handle.
func EvalContext(dims map[string]*dim.Dim) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(dims))
	for name, d := range dims {
		vars[name] = cty.CapsuleVal(dimCapsule, d)
	}
	return &hcl.EvalContext{Variables: vars}
}

// Evaluator is the HCL-specific implementation of config.Evaluator.
type Evaluator struct{}

var _ config.Evaluator = (*Evaluator)(nil)

// Spec evaluates a spec expression with declared dims in scope.
func (e *Evaluator) Spec(ctx context.Context, expr hcl.Expression, dims map[string]*dim.Dim) (spec.Spec, error) {
	logger := ctxlog.FromContext(ctx)

	val, diags := expr.Value(EvalContext(dims))
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate spec expression: %w", diags)
	}

	s, err := specFromCty(val)
	if err != nil {
		return nil, err
	}
	logger.Debug("Spec expression evaluated.", "spec", s.String())
	return s, nil
}

// Actual evaluates an actual-value expression. No variables are in
// scope; actual shapes are literal.
func (e *Evaluator) Actual(ctx context.Context, expr hcl.Expression) (shape.Value, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate actual expression: %w", diags)
	}
	return valueFromCty(val)
}

// Shapes evaluates a broadcast shapes expression into concrete shapes.
func (e *Evaluator) Shapes(ctx context.Context, expr hcl.Expression) ([]shape.Shape, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate shapes expression: %w", diags)
	}
	if !val.Type().IsTupleType() {
		return nil, fmt.Errorf("shapes must be a list of shapes, got %s", val.Type().FriendlyName())
	}

	var shapes []shape.Shape
	for i, elem := range val.AsValueSlice() {
		s, err := shapeFromCty(elem)
		if err != nil {
			return nil, fmt.Errorf("shapes[%d]: %w", i, err)
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

// specFromCty converts an evaluated spec expression into the closed
// spec sum. A tuple of per-dimension elements becomes a ShapeSpec; a
// tuple whose elements are themselves tuples or objects becomes a
// TupleSpec; an object becomes an ObjectSpec.
func specFromCty(v cty.Value) (spec.Spec, error) {
	ty := v.Type()
	switch {
	case ty.IsTupleType():
		elems := v.AsValueSlice()
		if nested(elems) {
			tup := make(spec.TupleSpec, 0, len(elems))
			for i, elem := range elems {
				sub, err := specFromCty(elem)
				if err != nil {
					return nil, fmt.Errorf("tuple element %d: %w", i, err)
				}
				tup = append(tup, sub)
			}
			return tup, nil
		}
		sp := make(spec.ShapeSpec, 0, len(elems))
		for i, elem := range elems {
			e, err := elemFromCty(elem)
			if err != nil {
				return nil, fmt.Errorf("spec element %d: %w", i, err)
			}
			sp = append(sp, e)
		}
		return sp, nil

	case ty.IsObjectType() || ty.IsMapType():
		obj := make(spec.ObjectSpec)
		for key, elem := range v.AsValueMap() {
			sub, err := specFromCty(elem)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			obj[key] = sub
		}
		return obj, nil

	default:
		return nil, fmt.Errorf("spec must be a tuple or object, got %s", ty.FriendlyName())
	}
}

// elemFromCty converts one element of a ShapeSpec expression.
func elemFromCty(v cty.Value) (spec.Elem, error) {
	ty := v.Type()
	switch {
	case ty == cty.Number:
		size, err := intFromCty(v)
		if err != nil {
			return nil, err
		}
		return spec.Fixed(size), nil
	case ty == cty.String:
		switch s := v.AsString(); s {
		case "*":
			return spec.Wildcard, nil
		case "...":
			return spec.Ellipsis, nil
		default:
			return nil, fmt.Errorf("unknown spec keyword %q (expected \"*\" or \"...\")", s)
		}
	case ty.Equals(dimCapsule):
		return spec.Sym(v.EncapsulatedValue().(*dim.Dim)), nil
	default:
		return nil, fmt.Errorf("invalid spec element of type %s", ty.FriendlyName())
	}
}

// valueFromCty converts an evaluated actual expression into a value
// tree: tuple of numbers → array shape, tuple of structures → tuple,
// object → object.
func valueFromCty(v cty.Value) (shape.Value, error) {
	ty := v.Type()
	switch {
	case ty.IsTupleType():
		elems := v.AsValueSlice()
		if nested(elems) {
			tup := make(shape.Tuple, 0, len(elems))
			for i, elem := range elems {
				sub, err := valueFromCty(elem)
				if err != nil {
					return nil, fmt.Errorf("tuple element %d: %w", i, err)
				}
				tup = append(tup, sub)
			}
			return tup, nil
		}
		s, err := shapeFromCty(v)
		if err != nil {
			return nil, err
		}
		return shape.Array{S: s}, nil

	case ty.IsObjectType() || ty.IsMapType():
		obj := make(shape.Object)
		for key, elem := range v.AsValueMap() {
			sub, err := valueFromCty(elem)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			obj[key] = sub
		}
		return obj, nil

	default:
		return nil, fmt.Errorf("actual must be a shape, tuple, or object, got %s", ty.FriendlyName())
	}
}

// shapeFromCty converts a tuple of non-negative numbers into a Shape.
func shapeFromCty(v cty.Value) (shape.Shape, error) {
	if !v.Type().IsTupleType() {
		return nil, fmt.Errorf("shape must be a list of sizes, got %s", v.Type().FriendlyName())
	}
	elems := v.AsValueSlice()
	s := make(shape.Shape, 0, len(elems))
	for i, elem := range elems {
		if elem.Type() != cty.Number {
			return nil, fmt.Errorf("size %d must be a number, got %s", i, elem.Type().FriendlyName())
		}
		size, err := intFromCty(elem)
		if err != nil {
			return nil, fmt.Errorf("size %d: %w", i, err)
		}
		if size < 0 {
			return nil, fmt.Errorf("size %d is negative: %d", i, size)
		}
		s = append(s, size)
	}
	return s, nil
}

// nested reports whether tuple elements are structures rather than
// per-dimension entries, which disambiguates a shape from a tuple of
// shapes. An empty tuple is a rank-0 shape.
func nested(elems []cty.Value) bool {
	for _, elem := range elems {
		ty := elem.Type()
		if ty.IsTupleType() || ty.IsObjectType() || ty.IsMapType() {
			return true
		}
	}
	return false
}

// intFromCty extracts an exact integer from a cty number.
func intFromCty(v cty.Value) (int, error) {
	bf := v.AsBigFloat()
	i64, acc := bf.Int64()
	if acc != big.Exact {
		return 0, fmt.Errorf("%s is not an integer", bf.Text('g', -1))
	}
	return int(i64), nil
}
