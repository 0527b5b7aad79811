package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/shapegridgo/internal/dim"
)

func TestOf(t *testing.T) {
	n := dim.New("n")
	s := Of(Ellipsis, n, 128, Wildcard)

	require.Len(t, s, 4)
	assert.Equal(t, Ellipsis, s[0])
	assert.Equal(t, Symbolic{Dim: n}, s[1])
	assert.Equal(t, Fixed(128), s[2])
	assert.Equal(t, Wildcard, s[3])
}

func TestOfRejectsUnknownTypes(t *testing.T) {
	assert.Panics(t, func() { Of("not-an-elem") })
}

func TestFormat(t *testing.T) {
	n, m := dim.New("n"), dim.New("m")

	assert.Equal(t, "(..., n, 10)", Of(Ellipsis, n, 10).String())
	assert.Equal(t, "(n, *, 128)", Of(n, Wildcard, 128).String())
	assert.Equal(t, "()", Of().String())

	obj := ObjectSpec{
		"w": Of(n, m),
		"b": Of(m),
	}
	assert.Equal(t, "{b: (m), w: (n, m)}", obj.String())

	tup := TupleSpec{Of(n, m), Of(m)}
	assert.Equal(t, "((n, m), (m))", tup.String())
}

func TestValidate(t *testing.T) {
	n := dim.New("n")

	t.Run("leading ellipsis is valid", func(t *testing.T) {
		assert.NoError(t, Validate(Of(Ellipsis, n, 10)))
		assert.NoError(t, Validate(Of(Ellipsis)))
	})

	t.Run("non-leading ellipsis is rejected", func(t *testing.T) {
		err := Validate(Of(n, Ellipsis, 10))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "first element")
	})

	t.Run("second ellipsis is rejected", func(t *testing.T) {
		err := Validate(Of(Ellipsis, Ellipsis, 10))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "position 1")
	})

	t.Run("negative fixed size is rejected", func(t *testing.T) {
		err := Validate(Of(-1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative fixed size")
	})

	t.Run("nested specs are validated", func(t *testing.T) {
		err := Validate(ObjectSpec{"w": Of(n, Ellipsis)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `key "w"`)

		err = Validate(TupleSpec{Of(Ellipsis, n), Of(10, Ellipsis)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tuple element 1")
	})
}
