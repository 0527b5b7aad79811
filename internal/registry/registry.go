// Package registry holds the named dimension handles of one loaded
// suite. Every spec expression in the suite resolves dim names through
// this registry, so all references to "n" share one handle and unify.
package registry

import (
	"github.com/vk/shapegridgo/internal/config"
	"github.com/vk/shapegridgo/internal/dim"
)

// Registry maps declared dimension names to their shared handles.
type Registry struct {
	dims  map[string]*dim.Dim
	order []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{dims: make(map[string]*dim.Dim)}
}

// PopulateFromModel allocates one handle per declared dimension. On a
// duplicate declaration the first handle wins; Validate reports the
// duplicate as an error.
func (r *Registry) PopulateFromModel(m *config.Model) {
	for _, decl := range m.Dims {
		if _, exists := r.dims[decl.Name]; exists {
			continue
		}
		var d *dim.Dim
		if decl.Batch {
			d = dim.NewBatch(decl.Name)
		} else {
			d = dim.New(decl.Name)
		}
		r.dims[decl.Name] = d
		r.order = append(r.order, decl.Name)
	}
}

// Lookup returns the handle for a declared dimension name.
func (r *Registry) Lookup(name string) (*dim.Dim, bool) {
	d, ok := r.dims[name]
	return d, ok
}

// Dims returns the name-to-handle mapping used as evaluation scope.
func (r *Registry) Dims() map[string]*dim.Dim {
	return r.dims
}

// Names returns the declared dimension names in declaration order.
func (r *Registry) Names() []string {
	return r.order
}
