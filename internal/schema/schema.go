// Package schema defines the HCL block structures of suite files. The
// hcl package decodes files into these structs and translates them
// into the format-agnostic config model.
package schema

import "github.com/hashicorp/hcl/v2"

// DimBlock declares a named symbolic dimension, e.g.
//
//	dim "n" {}
//	dim "b" { batch = true }
type DimBlock struct {
	Name  string `hcl:"name,label"`
	Batch bool   `hcl:"batch,optional"`
}

// CheckBlock pairs a spec expression with the actual value to match.
// Both are kept as raw expressions; specs may reference declared dims.
type CheckBlock struct {
	Name   string         `hcl:"name,label"`
	Spec   hcl.Expression `hcl:"spec"`
	Actual hcl.Expression `hcl:"actual"`
}

// SessionBlock groups checks into one validation session sharing a
// binding ledger. mode optionally overrides the app-wide default.
type SessionBlock struct {
	Name   string        `hcl:"name,label"`
	Mode   string        `hcl:"mode,optional"`
	Checks []*CheckBlock `hcl:"check,block"`
}

// BroadcastBlock requests a broadcast computation over literal shapes.
type BroadcastBlock struct {
	Name    string         `hcl:"name,label"`
	Shapes  hcl.Expression `hcl:"shapes"`
	Explain bool           `hcl:"explain,optional"`
}

// SuiteConfig is the top-level structure of one suite file.
type SuiteConfig struct {
	Dims       []*DimBlock       `hcl:"dim,block"`
	Sessions   []*SessionBlock   `hcl:"session,block"`
	Broadcasts []*BroadcastBlock `hcl:"broadcast,block"`
}
