package broadcast

import (
	"fmt"
	"strings"

	"github.com/vk/shapegridgo/internal/shape"
)

// Explain renders a step-by-step narration of the broadcast of the
// given shapes: the right-aligned view, a per-position classification,
// and the result or the conflicting position. It narrates the same
// column records the computation produces; it is never an independent
// reimplementation of the rules.
func Explain(shapes ...shape.Shape) string {
	if len(shapes) == 0 {
		return "No shapes provided"
	}
	if len(shapes) == 1 {
		return fmt.Sprintf("Single shape %s, no broadcasting needed", shapes[0])
	}

	columns, scanErr := scan(shapes)

	var b strings.Builder
	shapeStrs := make([]string, len(shapes))
	for i, s := range shapes {
		shapeStrs[i] = s.String()
	}
	fmt.Fprintf(&b, "Broadcasting %s:\n", strings.Join(shapeStrs, " with "))

	b.WriteString("  Step 1: Align shapes from right\n")
	for _, s := range shapes {
		fmt.Fprintf(&b, "    %s\n", alignedString(s, len(columns)))
	}

	b.WriteString("  Step 2: Compare dimensions\n")
	for _, col := range columns {
		b.WriteString("    " + describeColumn(col) + "\n")
	}

	if scanErr != nil {
		sizes := make([]string, len(scanErr.Sizes))
		for i, v := range scanErr.Sizes {
			sizes[i] = fmt.Sprintf("%d", v)
		}
		fmt.Fprintf(&b, "  Error: incompatible dimensions at dim %d (sizes %s)",
			scanErr.Index, strings.Join(sizes, ", "))
		return b.String()
	}

	result := make(shape.Shape, len(columns))
	for i, col := range columns {
		result[i] = col.result
	}
	fmt.Fprintf(&b, "  Result: %s", result)
	return b.String()
}

// alignedString renders a shape padded on the left so all shapes line
// up at their trailing dimension.
func alignedString(s shape.Shape, maxRank int) string {
	pad := maxRank - len(s)
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "(" + strings.Repeat("   ", pad) + strings.Join(parts, ", ") + ")"
}

// describeColumn renders one scanned column in the narration.
func describeColumn(col column) string {
	switch col.kind {
	case columnConflict:
		parts := make([]string, len(col.sizes))
		for i, v := range col.sizes {
			parts[i] = fmt.Sprintf("%d", v)
		}
		return fmt.Sprintf("dim %d: %s (INCOMPATIBLE)", col.index, strings.Join(parts, ", "))
	case columnOnlyIn:
		return fmt.Sprintf("dim %d: %d (only in shape %d)", col.index, col.result, col.onlyIn)
	case columnBroadcast:
		return fmt.Sprintf("dim %d: 1 → %d (broadcast)", col.index, col.result)
	default:
		return fmt.Sprintf("dim %d: %d = %d (match)", col.index, col.result, col.result)
	}
}
