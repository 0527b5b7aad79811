// Package shape defines concrete array shapes and the nested value
// trees the matcher walks. A Shape is an ordered sequence of
// non-negative sizes; a Value is either a single array, a tuple of
// values, or a string-keyed object of values.
package shape

import (
	"fmt"
	"strings"
)

// Shape is a concrete array shape. Its length is the rank.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int { return len(s) }

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// String renders the shape in tuple notation, e.g. "(2, 3, 4)".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteByte(')')
	return b.String()
}

// Shaped is the collaborator-supplied abstraction over anything that
// has a shape. The engine never inspects arrays beyond this.
type Shaped interface {
	Shape() Shape
}
