// Package app wires the suite pipeline together: it owns the logger,
// loads the suite through a config.Loader, populates and validates the
// dimension registry, and runs every session and broadcast block,
// applying the validation mode policy around the engine.
package app
