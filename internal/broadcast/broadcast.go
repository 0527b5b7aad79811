// Package broadcast computes NumPy-style broadcast result shapes and
// renders step-by-step explanations of the computation. It is
// stateless and independent of the unification ledger; it shares the
// matcher's right-aligned view of dimensions.
package broadcast

import (
	"fmt"
	"strings"

	"github.com/vk/shapegridgo/internal/shape"
)

// Error reports two or more non-1 sizes conflicting at one aligned
// position. Index is negative, anchored at the trailing dimension.
type Error struct {
	Shapes []shape.Shape
	Index  int
	Sizes  []int
}

func (e *Error) Error() string {
	sizes := make([]string, len(e.Sizes))
	for i, v := range e.Sizes {
		sizes[i] = fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("cannot broadcast dimension %d: sizes %s are incompatible (must be equal or 1)",
		e.Index, strings.Join(sizes, ", "))
}

// columnKind classifies one aligned position of the scan.
type columnKind int

const (
	columnMatch columnKind = iota
	columnBroadcast
	columnOnlyIn
	columnConflict
)

// column records what the scan saw at one aligned position. The same
// records drive both the result computation and the narration, so the
// explanation can never drift from the computation.
type column struct {
	index  int   // negative, right-anchored
	sizes  []int // per input shape, 1-padded
	kind   columnKind
	result int
	onlyIn int // 1-based shape index for columnOnlyIn
}

// scan right-aligns the shapes and walks the columns from the trailing
// position forward. It returns one record per column (in left-to-right
// order) and the first conflict encountered, which by scan order is
// the rightmost one.
func scan(shapes []shape.Shape) ([]column, *Error) {
	maxRank := 0
	for _, s := range shapes {
		if len(s) > maxRank {
			maxRank = len(s)
		}
	}

	columns := make([]column, maxRank)
	var firstErr *Error

	for pos := maxRank - 1; pos >= 0; pos-- {
		index := pos - maxRank // negative, -1 is trailing
		col := column{index: index, sizes: make([]int, len(shapes)), result: 1}

		covered := 0
		lastCovering := 0
		for si, s := range shapes {
			pad := maxRank - len(s)
			size := 1
			if pos >= pad {
				size = s[pos-pad]
				covered++
				lastCovering = si
			}
			col.sizes[si] = size
		}

		var conflicting []int
		sawOne := false
		for _, size := range col.sizes {
			if size == 1 {
				sawOne = true
				continue
			}
			if col.result == 1 {
				col.result = size
			} else if size != col.result {
				if len(conflicting) == 0 {
					conflicting = append(conflicting, col.result)
				}
				if !contains(conflicting, size) {
					conflicting = append(conflicting, size)
				}
			}
		}

		switch {
		case len(conflicting) > 0:
			col.kind = columnConflict
			if firstErr == nil {
				firstErr = &Error{Shapes: shapes, Index: index, Sizes: conflicting}
			}
		case covered == 1 && len(shapes) > 1:
			col.kind = columnOnlyIn
			col.onlyIn = lastCovering + 1
		case sawOne && col.result != 1:
			col.kind = columnBroadcast
		default:
			col.kind = columnMatch
		}

		columns[pos] = col
	}

	return columns, firstErr
}

// Shapes computes the broadcast result of the given shapes. The result
// rank is the maximum input rank; each position holds the unique non-1
// size seen there, or 1 when every shape has 1. Conflicting non-1
// sizes fail with a *Error citing the right-anchored position.
func Shapes(shapes ...shape.Shape) (shape.Shape, error) {
	if len(shapes) == 0 {
		return nil, fmt.Errorf("broadcast requires at least one shape")
	}

	columns, scanErr := scan(shapes)
	if scanErr != nil {
		return nil, scanErr
	}

	result := make(shape.Shape, len(columns))
	for i, col := range columns {
		result[i] = col.result
	}
	return result, nil
}

func contains(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
