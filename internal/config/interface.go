package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"

	"github.com/vk/shapegridgo/internal/dim"
	"github.com/vk/shapegridgo/internal/shape"
	"github.com/vk/shapegridgo/internal/spec"
)

// Loader is the interface for a format-specific suite loader.
type Loader interface {
	// Load reads suite files from the given paths, translates them
	// into the format-agnostic model, and returns a matching
	// Evaluator for the expressions the model holds.
	Load(ctx context.Context, paths ...string) (*Model, Evaluator, error)
}

// Evaluator resolves the raw expressions held by the model into engine
// values. It is the bridge between the configuration format and the
// matcher's closed sum types.
type Evaluator interface {
	// Spec evaluates a spec expression. Declared dimension names are
	// in scope and resolve to their shared handles.
	Spec(ctx context.Context, expr hcl.Expression, dims map[string]*dim.Dim) (spec.Spec, error)

	// Actual evaluates an actual-value expression into a value tree.
	Actual(ctx context.Context, expr hcl.Expression) (shape.Value, error)

	// Shapes evaluates a broadcast shapes expression into a list of
	// concrete shapes.
	Shapes(ctx context.Context, expr hcl.Expression) ([]shape.Shape, error)
}
