// Package cargo wraps the cargo CLI for metadata, vendoring and offline builds.
package cargo

import "context"

// Cargo defines the package-manager operations used by the release workflow.
type Cargo interface {
	// PackageVersion returns the version declared by the workspace's single
	// package. Workspaces with zero or several packages are an error.
	PackageVersion(ctx context.Context) (string, error)

	// Vendor bundles non-dev dependencies for the given target platform
	// pattern into a gzip-compressed tarball with a fixed "vendor" prefix.
	Vendor(ctx context.Context, platform, outPath string) error

	// BuildOffline performs a release build of the given manifest with
	// network access disabled.
	BuildOffline(ctx context.Context, manifestPath string) error
}
