package config

import "github.com/hashicorp/hcl/v2"

// Model is the unified, format-agnostic representation of one loaded
// shape suite. Spec and actual expressions stay unevaluated here; the
// Evaluator resolves them at run time against the declared dimensions.
type Model struct {
	Dims       []*DimDecl
	Sessions   []*Session
	Broadcasts []*BroadcastDecl
}

// DimDecl declares a named symbolic dimension for the whole suite.
type DimDecl struct {
	Name  string
	Batch bool
}

// Session is one validation session: a group of checks sharing a
// single binding ledger, so dimensions bound by one check are enforced
// by every later check in the same session.
type Session struct {
	Name string
	// Mode optionally overrides the app default ("check", "warn",
	// "skip"). Empty means inherit.
	Mode   string
	Checks []*Check
}

// Check pairs a shape spec expression with the actual value it must
// match, both held as raw expressions.
type Check struct {
	Name   string
	Spec   hcl.Expression
	Actual hcl.Expression
}

// BroadcastDecl requests a broadcast computation over literal shapes,
// optionally rendered as a step-by-step explanation.
type BroadcastDecl struct {
	Name    string
	Shapes  hcl.Expression
	Explain bool
}
