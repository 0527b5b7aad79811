// Package hcl provides the concrete HCL implementation of the suite
// loading and expression evaluation interfaces defined in the config
// package. It is responsible for file parsing, HCL-to-model
// translation, and the cty-to-engine conversions, including the
// capsule type that lets spec expressions reference dimension handles
// by name.
package hcl
