// Package forge talks to the code-hosting platform through its CLI.
package forge

import "context"

// Forge defines the hosting-platform operations used by the release workflow.
type Forge interface {
	// GenerateNotes asks the platform to auto-generate release notes for the
	// (not yet pushed) tag and returns the notes body.
	GenerateNotes(ctx context.Context, tag string) (string, error)

	// CreateRelease publishes a release for the pushed tag, attaching the
	// given asset files. Notes and signature verification come from the tag
	// itself.
	CreateRelease(ctx context.Context, tag string, assets ...string) error
}
