// Package unify implements the binding ledger: the per-session record
// of which symbolic dimensions resolved to which concrete sizes, and
// where each binding came from. A ledger is single-writer state scoped
// to exactly one validation session; concurrent sessions must each use
// their own.
package unify

import (
	"fmt"
	"strings"

	"github.com/vk/shapegridgo/internal/dim"
)

// Binding records one resolved dimension: the concrete value and the
// provenance of the occurrence that bound it, e.g. "x[1]" or
// "params.w[0]". Bindings are immutable once recorded.
type Binding struct {
	Dim    *dim.Dim
	Value  int
	Source string
}

// Ledger maps dimension identity to its binding, preserving first-bind
// order for diagnostics.
type Ledger struct {
	bindings map[*dim.Dim]Binding
	order    []*dim.Dim
}

// NewLedger creates an empty ledger for one validation session.
func NewLedger() *Ledger {
	return &Ledger{bindings: make(map[*dim.Dim]Binding)}
}

// Bind records d=value. Re-binding to the same value is a no-op;
// re-binding to a different value fails with a *UnificationError
// carrying both occurrences.
func (l *Ledger) Bind(d *dim.Dim, value int, source string) error {
	if prev, ok := l.bindings[d]; ok {
		if prev.Value == value {
			return nil
		}
		return &UnificationError{
			Dim:         d,
			PriorValue:  prev.Value,
			PriorSource: prev.Source,
			NewValue:    value,
			NewSource:   source,
			Bindings:    l.String(),
		}
	}
	l.bindings[d] = Binding{Dim: d, Value: value, Source: source}
	l.order = append(l.order, d)
	return nil
}

// Resolve returns the bound value for d, or false when unbound.
func (l *Ledger) Resolve(d *dim.Dim) (int, bool) {
	b, ok := l.bindings[d]
	return b.Value, ok
}

// Source returns the provenance of d's binding, or false when unbound.
func (l *Ledger) Source(d *dim.Dim) (string, bool) {
	b, ok := l.bindings[d]
	return b.Source, ok
}

// Len returns the number of recorded bindings.
func (l *Ledger) Len() int { return len(l.order) }

// Snapshot returns all bindings in first-bind order.
func (l *Ledger) Snapshot() []Binding {
	out := make([]Binding, 0, len(l.order))
	for _, d := range l.order {
		out = append(out, l.bindings[d])
	}
	return out
}

// String formats the current bindings for error messages, e.g.
// "{n=3 (from x[0]), m=4 (from x[1])}".
func (l *Ledger) String() string {
	if len(l.order) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(l.order))
	for _, d := range l.order {
		b := l.bindings[d]
		parts = append(parts, fmt.Sprintf("%s=%d (from %s)", d.Name(), b.Value, b.Source))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
