// Package runner defines the boundary the core hands off to: given a
// parsed Shire file, something outside the core must actually run it
// against a host IDE. That something is deliberately not implemented
// here; this package only names the contract.
package runner

import "context"

// FileRunner executes a named Shire file against a host environment.
// Implementations are external collaborators: they own IDE integration,
// pattern-action function implementations, and toolchain registries,
// none of which the core provides.
type FileRunner interface {
	RunFile(ctx context.Context, filename string) error
}
