package unify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/shapegridgo/internal/dim"
)

func TestBindAndResolve(t *testing.T) {
	n := dim.New("n")
	led := NewLedger()

	_, ok := led.Resolve(n)
	assert.False(t, ok)

	require.NoError(t, led.Bind(n, 3, "x[0]"))

	v, ok := led.Resolve(n)
	require.True(t, ok)
	assert.Equal(t, 3, v)

	src, ok := led.Source(n)
	require.True(t, ok)
	assert.Equal(t, "x[0]", src)
}

func TestRebindSameValueIsNoOp(t *testing.T) {
	n := dim.New("n")
	led := NewLedger()

	require.NoError(t, led.Bind(n, 3, "x[0]"))
	require.NoError(t, led.Bind(n, 3, "y[1]"))

	// The original source wins; the no-op must not overwrite it.
	src, ok := led.Source(n)
	require.True(t, ok)
	assert.Equal(t, "x[0]", src)
	assert.Equal(t, 1, led.Len())
}

func TestRebindConflict(t *testing.T) {
	n := dim.New("n")
	led := NewLedger()

	require.NoError(t, led.Bind(n, 3, "x[0]"))
	err := led.Bind(n, 4, "y[1]")
	require.Error(t, err)

	var uerr *UnificationError
	require.True(t, errors.As(err, &uerr))
	assert.Same(t, n, uerr.Dim)
	assert.Equal(t, 3, uerr.PriorValue)
	assert.Equal(t, "x[0]", uerr.PriorSource)
	assert.Equal(t, 4, uerr.NewValue)
	assert.Equal(t, "y[1]", uerr.NewSource)
	assert.Contains(t, uerr.Error(), `dimension "n" bound to 3 from x[0], but got 4 from y[1]`)
	assert.Equal(t, "{n=3 (from x[0])}", uerr.Bindings)

	// The conflicting bind must not disturb the prior binding.
	v, ok := led.Resolve(n)
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestSameNameDimsAreIndependent(t *testing.T) {
	a := dim.New("n")
	b := dim.New("n")
	led := NewLedger()

	require.NoError(t, led.Bind(a, 3, "x[0]"))
	require.NoError(t, led.Bind(b, 4, "y[0]"))

	va, _ := led.Resolve(a)
	vb, _ := led.Resolve(b)
	assert.Equal(t, 3, va)
	assert.Equal(t, 4, vb)
}

func TestSnapshotOrder(t *testing.T) {
	n, m, k := dim.New("n"), dim.New("m"), dim.New("k")
	led := NewLedger()

	require.NoError(t, led.Bind(m, 4, "x[1]"))
	require.NoError(t, led.Bind(n, 3, "x[0]"))
	require.NoError(t, led.Bind(k, 5, "y[1]"))
	require.NoError(t, led.Bind(m, 4, "y[0]")) // no-op, keeps position

	snap := led.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "m", snap[0].Dim.Name())
	assert.Equal(t, "n", snap[1].Dim.Name())
	assert.Equal(t, "k", snap[2].Dim.Name())
}

func TestStringFormatting(t *testing.T) {
	led := NewLedger()
	assert.Equal(t, "{}", led.String())

	n, m := dim.New("n"), dim.New("m")
	require.NoError(t, led.Bind(n, 3, "x[0]"))
	require.NoError(t, led.Bind(m, 4, "x[1]"))
	assert.Equal(t, "{n=3 (from x[0]), m=4 (from x[1])}", led.String())
}
