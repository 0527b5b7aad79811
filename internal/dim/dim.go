// Package dim provides symbolic dimension handles. A Dim is an opaque
// identity used as a unification variable: two dims unify only when they
// are the same handle, never because they share a display name.
package dim

import "sync/atomic"

// counter allocates process-unique ids for diagnostics and ledger keys.
var counter atomic.Uint64

// Dim is a symbolic dimension. Equality is by handle identity; the name
// exists for error messages only.
type Dim struct {
	id    uint64
	name  string
	batch bool
}

// New allocates a fresh dimension handle. Calling New twice with the
// same name yields two independent, non-interchangeable dimensions.
func New(name string) *Dim {
	return &Dim{id: counter.Add(1), name: name}
}

// NewBatch allocates a dimension carrying the batch marker. The marker
// is documentation only; it does not change matching behaviour.
func NewBatch(name string) *Dim {
	d := New(name)
	d.batch = true
	return d
}

// ID returns the unique id of this handle.
func (d *Dim) ID() uint64 { return d.id }

// Name returns the display name used in diagnostics.
func (d *Dim) Name() string { return d.name }

// Batch reports whether the dimension was declared as a batch dimension.
func (d *Dim) Batch() bool { return d.batch }

func (d *Dim) String() string { return d.name }
