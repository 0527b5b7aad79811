package unify

import (
	"fmt"

	"github.com/vk/shapegridgo/internal/dim"
)

// UnificationError reports a symbolic dimension re-bound to a
// conflicting value. It carries both occurrences so the message can
// point at the exact pair of positions that disagree.
type UnificationError struct {
	Dim         *dim.Dim
	PriorValue  int
	PriorSource string
	NewValue    int
	NewSource   string

	// Bindings is the ledger snapshot at the moment of the conflict.
	Bindings string
}

func (e *UnificationError) Error() string {
	return fmt.Sprintf("dimension %q bound to %d from %s, but got %d from %s",
		e.Dim.Name(), e.PriorValue, e.PriorSource, e.NewValue, e.NewSource)
}
