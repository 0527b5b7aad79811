package dim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	d := New("n")
	require.NotNil(t, d)
	assert.Equal(t, "n", d.Name())
	assert.False(t, d.Batch())
	assert.Equal(t, "n", d.String())
}

func TestSameNameDistinctIdentity(t *testing.T) {
	a := New("n")
	b := New("n")

	assert.NotSame(t, a, b)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestNewBatch(t *testing.T) {
	d := NewBatch("b")
	assert.True(t, d.Batch())
	assert.Equal(t, "b", d.Name())
}

func TestIDsAreMonotonic(t *testing.T) {
	a := New("a")
	b := New("b")
	assert.Greater(t, b.ID(), a.ID())
}
