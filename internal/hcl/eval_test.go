package hcl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/shapegridgo/internal/dim"
	"github.com/vk/shapegridgo/internal/shape"
	"github.com/vk/shapegridgo/internal/spec"
)

func TestEvaluatorSpec(t *testing.T) {
	model, eval := loadSuite(t, `
		dim "n" {}
		session "s" {
			check "x" {
				spec   = ["...", n, 128, "*"]
				actual = [2, 3, 128, 9]
			}
		}
	`)

	n := dim.New("n")
	dims := map[string]*dim.Dim{"n": n}

	sp, err := eval.Spec(context.Background(), model.Sessions[0].Checks[0].Spec, dims)
	require.NoError(t, err)

	ss, ok := sp.(spec.ShapeSpec)
	require.True(t, ok)
	require.Len(t, ss, 4)
	assert.Equal(t, spec.Ellipsis, ss[0])
	assert.Equal(t, spec.Sym(n), ss[1])
	assert.Equal(t, spec.Fixed(128), ss[2])
	assert.Equal(t, spec.Wildcard, ss[3])
}

func TestEvaluatorObjectSpecAndActual(t *testing.T) {
	model, eval := loadSuite(t, `
		dim "n" {}
		dim "m" {}
		session "s" {
			check "params" {
				spec   = { w = [n, m], b = [m] }
				actual = { w = [3, 4], b = [4] }
			}
		}
	`)

	n, m := dim.New("n"), dim.New("m")
	dims := map[string]*dim.Dim{"n": n, "m": m}
	check := model.Sessions[0].Checks[0]

	sp, err := eval.Spec(context.Background(), check.Spec, dims)
	require.NoError(t, err)
	obj, ok := sp.(spec.ObjectSpec)
	require.True(t, ok)
	assert.Equal(t, "{b: (m), w: (n, m)}", obj.String())

	actual, err := eval.Actual(context.Background(), check.Actual)
	require.NoError(t, err)
	require.IsType(t, shape.Object{}, actual)

	// Parsed spec and actual must match end to end.
	led, err := spec.Match(actual, sp, nil, "params")
	require.NoError(t, err)
	vn, _ := led.Resolve(n)
	vm, _ := led.Resolve(m)
	assert.Equal(t, 3, vn)
	assert.Equal(t, 4, vm)
}

func TestEvaluatorTupleSpec(t *testing.T) {
	model, eval := loadSuite(t, `
		dim "n" {}
		session "s" {
			check "outputs" {
				spec   = [[n, 4], [n]]
				actual = [[3, 4], [3]]
			}
		}
	`)

	n := dim.New("n")
	check := model.Sessions[0].Checks[0]

	sp, err := eval.Spec(context.Background(), check.Spec, map[string]*dim.Dim{"n": n})
	require.NoError(t, err)
	tup, ok := sp.(spec.TupleSpec)
	require.True(t, ok)
	require.Len(t, tup, 2)

	actual, err := eval.Actual(context.Background(), check.Actual)
	require.NoError(t, err)
	require.IsType(t, shape.Tuple{}, actual)

	_, err = spec.Match(actual, sp, nil, "outputs")
	assert.NoError(t, err)
}

func TestEvaluatorScalarShapes(t *testing.T) {
	model, eval := loadSuite(t, `
		session "s" {
			check "scalar" {
				spec = []
				actual = []
			}
		}
	`)
	check := model.Sessions[0].Checks[0]

	sp, err := eval.Spec(context.Background(), check.Spec, nil)
	require.NoError(t, err)
	assert.Equal(t, spec.ShapeSpec{}, sp)

	actual, err := eval.Actual(context.Background(), check.Actual)
	require.NoError(t, err)
	assert.Equal(t, shape.Array{S: shape.Shape{}}, actual)
}

func TestEvaluatorRejectsUnknownKeyword(t *testing.T) {
	model, eval := loadSuite(t, `
		session "s" {
			check "x" {
				spec = ["??", 3]
				actual = [1, 3]
			}
		}
	`)

	_, err := eval.Spec(context.Background(), model.Sessions[0].Checks[0].Spec, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown spec keyword "??"`)
}

func TestEvaluatorRejectsUndeclaredDim(t *testing.T) {
	model, eval := loadSuite(t, `
		session "s" {
			check "x" {
				spec = [q]
				actual = [3]
			}
		}
	`)

	_, err := eval.Spec(context.Background(), model.Sessions[0].Checks[0].Spec, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to evaluate spec expression")
}

func TestEvaluatorRejectsFractionalSize(t *testing.T) {
	model, eval := loadSuite(t, `
		session "s" {
			check "x" {
				spec = [1.5]
				actual = [3]
			}
		}
	`)

	_, err := eval.Spec(context.Background(), model.Sessions[0].Checks[0].Spec, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an integer")
}

func TestEvaluatorShapes(t *testing.T) {
	model, eval := loadSuite(t, `
		broadcast "b" { shapes = [[3, 1], [1, 4], []] }
	`)

	shapes, err := eval.Shapes(context.Background(), model.Broadcasts[0].Shapes)
	require.NoError(t, err)
	require.Len(t, shapes, 3)
	assert.Equal(t, shape.Shape{3, 1}, shapes[0])
	assert.Equal(t, shape.Shape{1, 4}, shapes[1])
	assert.Equal(t, shape.Shape{}, shapes[2])
}

func TestEvaluatorRejectsNegativeSize(t *testing.T) {
	model, eval := loadSuite(t, `
		broadcast "b" { shapes = [[-1, 2]] }
	`)

	_, err := eval.Shapes(context.Background(), model.Broadcasts[0].Shapes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}
