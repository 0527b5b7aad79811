package spec

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/shapegridgo/internal/shape"
	"github.com/vk/shapegridgo/internal/unify"
)

// RankMismatchError reports a shape whose rank disagrees with the
// spec's exact or minimum ("N+") rank requirement.
type RankMismatchError struct {
	Subject  string
	Spec     string
	Shape    shape.Shape
	Expected string // "2" for exact, "2+" for a leading ellipsis
	Actual   int
	Bindings string
}

func (e *RankMismatchError) Error() string {
	return fmt.Sprintf("expected rank %s, got rank %d", e.Expected, e.Actual)
}

// DimensionMismatchError reports one fixed position disagreeing with
// the actual size there.
type DimensionMismatchError struct {
	Subject  string
	Spec     string
	Shape    shape.Shape
	Position int
	Expected int
	Actual   int
	Bindings string
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dim[%d] expected %d, got %d", e.Position, e.Expected, e.Actual)
}

// StructuralMismatchError reports a disagreement in nesting structure:
// wrong value kind, tuple arity, or object key set.
type StructuralMismatchError struct {
	Subject  string
	Path     string
	Spec     string
	Actual   string
	Reason   string
	Missing  []string
	Extra    []string
	Bindings string
}

func (e *StructuralMismatchError) Error() string {
	if e.Path != "" && e.Path != e.Subject {
		return fmt.Sprintf("%s: %s", e.Path, e.Reason)
	}
	return e.Reason
}

// keySetReason renders a key-set disagreement, naming missing and
// extra keys in sorted order.
func keySetReason(missing, extra []string) string {
	sort.Strings(missing)
	sort.Strings(extra)
	var parts []string
	if len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing keys %s", quoteAll(missing)))
	}
	if len(extra) > 0 {
		parts = append(parts, fmt.Sprintf("extra keys %s", quoteAll(extra)))
	}
	return "object key set mismatch: " + strings.Join(parts, ", ")
}

func quoteAll(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = fmt.Sprintf("%q", k)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// Describe renders any matcher failure as a multi-line diagnostic
// block suitable for reports. Unknown errors fall back to their
// Error string.
func Describe(err error) string {
	var lines []string
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, fmt.Sprintf("  %-9s %s", label+":", value))
		}
	}

	var rank *RankMismatchError
	var dimErr *DimensionMismatchError
	var structural *StructuralMismatchError
	var unification *unify.UnificationError

	switch {
	case errors.As(err, &rank):
		lines = append(lines, "shape check failed: rank mismatch")
		add("subject", rank.Subject)
		add("expected", rank.Spec)
		add("actual", rank.Shape.String())
		add("reason", rank.Error())
		add("bindings", rank.Bindings)
	case errors.As(err, &dimErr):
		lines = append(lines, "shape check failed: dimension mismatch")
		add("subject", dimErr.Subject)
		add("expected", dimErr.Spec)
		add("actual", dimErr.Shape.String())
		add("reason", dimErr.Error())
		add("bindings", dimErr.Bindings)
	case errors.As(err, &structural):
		lines = append(lines, "shape check failed: structural mismatch")
		add("subject", structural.Subject)
		add("path", structural.Path)
		add("expected", structural.Spec)
		add("actual", structural.Actual)
		add("reason", structural.Reason)
		add("bindings", structural.Bindings)
	case errors.As(err, &unification):
		lines = append(lines, "shape check failed: unification conflict")
		add("dimension", unification.Dim.Name())
		add("reason", unification.Error())
		add("bindings", unification.Bindings)
	default:
		return err.Error()
	}
	return strings.Join(lines, "\n")
}
