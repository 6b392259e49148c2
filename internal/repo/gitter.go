// Package repo provides git repository operations for cutting releases.
package repo

import "context"

// Gitter defines the interface for git operations used by the release workflow.
type Gitter interface {
	// TagExists reports whether the exact tag already exists locally.
	TagExists(ctx context.Context, tag string) (bool, error)

	// CreateSignedTag creates a signed annotated tag at HEAD using message
	// as the tag message.
	CreateSignedTag(ctx context.Context, tag, message string) error

	// Archive writes a gzip-compressed tarball of the tree at tag, with every
	// path placed under prefix.
	Archive(ctx context.Context, tag, prefix, outPath string) error

	// PushTag pushes the tag to the named remote.
	PushTag(ctx context.Context, remote, tag string) error
}
