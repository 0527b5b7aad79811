// Package config defines the format-agnostic model of a shape suite —
// dimension declarations, grouped check sessions, and broadcast
// requests — along with the loader interfaces a concrete front end
// (HCL) implements, and the validation mode policy applied by the app.
package config
